package response

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Alturino/salon/cart/internal/store"
	"github.com/Alturino/salon/catalog"
)

func TestNewCart(t *testing.T) {
	state := store.CartState{
		SalonID: "salon-centrum",
		Lines: []store.CartLine{
			{ID: "haircut", Name: "Knippen dames", Price: decimal.NewFromFloat(42.50), Quantity: 2},
		},
	}

	cart := NewCart(state, 85)

	assert.Equal(t, "salon-centrum", cart.SalonID)
	assert.Len(t, cart.Items, 1)
	assert.EqualValues(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 85.0, cart.Total)
	assert.Equal(t, 17.85, cart.Tax, "tax goes through the decimal path")
	assert.Equal(t, "€ 85,00", cart.TotalFormatted)
}

func TestNewSalonServicesFormatsPrices(t *testing.T) {
	services := NewSalonServices(catalog.Seed())

	assert.NotEmpty(t, services)
	for _, svc := range services {
		assert.NotEmpty(t, svc.ID)
		assert.False(t, svc.Price.IsNegative())
		assert.Contains(t, svc.PriceFormatted, "€ ")
	}
}
