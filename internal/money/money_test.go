package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{
			name:     "given float with grouping should render dutch euro",
			input:    1234.5,
			expected: "€ 1.234,50",
		},
		{
			name:     "given string encoded decimal should not pick up float artifacts",
			input:    "19.90",
			expected: "€ 19,90",
		},
		{
			name:     "given decimal should render with two fraction digits",
			input:    decimal.NewFromInt(5),
			expected: "€ 5,00",
		},
		{
			name:     "given int zero should render zero amount",
			input:    0,
			expected: "€ 0,00",
		},
		{
			name:     "given large amount should group thousands",
			input:    "1234567.8",
			expected: "€ 1.234.567,80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.input))
		})
	}
}

func TestFormatCurrencyMalformedInputPanics(t *testing.T) {
	assert.Panics(t, func() { FormatCurrency("not-a-price") })
	assert.Panics(t, func() { FormatCurrency(struct{}{}) })
}

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		name     string
		items    []LineTotal
		expected float64
	}{
		{
			name:     "given no items should return zero",
			items:    nil,
			expected: 0,
		},
		{
			name: "given single item should multiply price by quantity",
			items: []LineTotal{
				{Price: decimal.NewFromFloat(10), Quantity: 3},
			},
			expected: 30,
		},
		{
			name: "given multiple items should sum line totals",
			items: []LineTotal{
				{Price: decimal.NewFromFloat(10), Quantity: 1},
				{Price: decimal.NewFromFloat(3.5), Quantity: 2},
			},
			expected: 17,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateTotal(tt.items))
		})
	}
}

func TestCalculateTax(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		rate     float64
		expected float64
	}{
		{
			name:     "given default rate should return exact tax",
			amount:   100,
			rate:     DefaultTaxRate,
			expected: 21,
		},
		{
			name:     "given amounts that drift in binary float should stay exact",
			amount:   0.1,
			rate:     0.2,
			expected: 0.02,
		},
		{
			name:     "given zero amount should return zero",
			amount:   0,
			rate:     DefaultTaxRate,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateTax(tt.amount, tt.rate))
		})
	}
}
