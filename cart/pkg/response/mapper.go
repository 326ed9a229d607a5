package response

import (
	"github.com/Alturino/salon/cart/internal/store"
	"github.com/Alturino/salon/catalog"
	"github.com/Alturino/salon/internal/money"
)

// NewCart maps a state snapshot to the wire shape. Total comes from the
// float display path; tax and the formatted total go through the decimal
// path since they leave the service.
func NewCart(state store.CartState, total float64) Cart {
	items := make([]CartItem, len(state.Lines))
	for i, line := range state.Lines {
		items[i] = CartItem(line)
	}
	return Cart{
		SalonID:        state.SalonID,
		Items:          items,
		Total:          total,
		Tax:            money.CalculateTax(total, money.DefaultTaxRate),
		TotalFormatted: money.FormatCurrency(total),
	}
}

func NewSalonServices(services []catalog.Service) []SalonService {
	out := make([]SalonService, len(services))
	for i, svc := range services {
		out[i] = SalonService{
			ID:              svc.ID.String(),
			Name:            svc.Name,
			Category:        svc.Category,
			Price:           svc.Price,
			PriceFormatted:  money.FormatCurrency(svc.Price),
			DurationMinutes: svc.DurationMinutes,
			Image:           svc.Image,
		}
	}
	return out
}
