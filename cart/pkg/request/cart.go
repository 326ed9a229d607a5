package request

import (
	"github.com/shopspring/decimal"
)

type AddItem struct {
	ID    string          `validate:"required" json:"id"`
	Name  string          `validate:"required" json:"name"`
	Price decimal.Decimal `validate:"required" json:"price"`
	Image string          `json:"image,omitempty"`
}

// UpdateQuantity deliberately has no lower bound: a quantity below 1
// removes the line.
type UpdateQuantity struct {
	Quantity int32 `json:"quantity"`
}

type SetSalon struct {
	SalonID string `validate:"required" json:"salon_id"`
}
