package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const seedSalonID = "salon-centrum"

// Seed returns the fixed treatment price list the pricing page serves.
func Seed() []Service {
	return []Service{
		{
			ID:              uuid.MustParse("0b8f2d0a-6c1e-4f3b-9a2d-1f4e8c7b6a50"),
			SalonID:         seedSalonID,
			Name:            "Knippen dames",
			Category:        "hair",
			Price:           decimal.NewFromFloat(42.50),
			DurationMinutes: 45,
		},
		{
			ID:              uuid.MustParse("1c9e3e1b-7d2f-4a4c-8b3e-2a5f9d8c7b61"),
			SalonID:         seedSalonID,
			Name:            "Knippen heren",
			Category:        "hair",
			Price:           decimal.NewFromFloat(29.50),
			DurationMinutes: 30,
		},
		{
			ID:              uuid.MustParse("2daf4f2c-8e3a-4b5d-9c4f-3b6a0e9d8c72"),
			SalonID:         seedSalonID,
			Name:            "Kleuren",
			Category:        "hair",
			Price:           decimal.NewFromFloat(89.90),
			DurationMinutes: 90,
		},
		{
			ID:              uuid.MustParse("3eb0503d-9f4b-4c6e-8d50-4c7b1f0e9d83"),
			SalonID:         seedSalonID,
			Name:            "Balayage",
			Category:        "hair",
			Price:           decimal.NewFromFloat(135),
			DurationMinutes: 150,
		},
		{
			ID:              uuid.MustParse("4fc1614e-0a5c-4d7f-9e61-5d8c201f0e94"),
			SalonID:         seedSalonID,
			Name:            "Manicure",
			Category:        "nails",
			Price:           decimal.NewFromFloat(32.50),
			DurationMinutes: 40,
		},
		{
			ID:              uuid.MustParse("50d2725f-1b6d-4e80-8f72-6e9d312010a5"),
			SalonID:         seedSalonID,
			Name:            "Pedicure",
			Category:        "nails",
			Price:           decimal.NewFromFloat(37.50),
			DurationMinutes: 45,
		},
		{
			ID:              uuid.MustParse("61e38360-2c7e-4f91-9083-7f0e42312116"),
			SalonID:         seedSalonID,
			Name:            "Gezichtsbehandeling",
			Category:        "skin",
			Price:           decimal.NewFromFloat(64.90),
			DurationMinutes: 60,
		},
	}
}
