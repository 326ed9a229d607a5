package response

import (
	"github.com/shopspring/decimal"
)

type Cart struct {
	SalonID        string     `json:"salon_id,omitempty"`
	Items          []CartItem `json:"items"`
	Total          float64    `json:"total"`
	Tax            float64    `json:"tax"`
	TotalFormatted string     `json:"total_formatted"`
}

type CartItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int32           `json:"quantity"`
	Image    string          `json:"image,omitempty"`
}

type SalonService struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Price           decimal.Decimal `json:"price"`
	PriceFormatted  string          `json:"price_formatted"`
	DurationMinutes int32           `json:"duration_minutes"`
	Image           string          `json:"image,omitempty"`
}
