package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Alturino/salon/cart/internal/common/otel"
	"github.com/Alturino/salon/cart/internal/notification"
	"github.com/Alturino/salon/internal/log"
	"github.com/Alturino/salon/internal/money"
)

// CartLine is one purchasable item in the cart. A cart holds at most one
// line per id; quantity is always >= 1, a line driven below 1 is removed.
type CartLine struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int32           `json:"quantity"`
	Image    string          `json:"image,omitempty"`
}

// CartState is the full cart: lines in insertion order plus the salon the
// cart currently belongs to. The salon id is an opaque token, it is never
// cross-checked against the lines.
type CartState struct {
	Lines   []CartLine `json:"lines"`
	SalonID string     `json:"salon_id,omitempty"`
}

func (s CartState) clone() CartState {
	next := s
	next.Lines = make([]CartLine, len(s.Lines))
	copy(next.Lines, s.Lines)
	return next
}

// Observer is invoked synchronously after every state replacement, before
// the mutating call returns. Observers must not mutate the state they are
// handed.
type Observer func(c context.Context, state CartState)

// Candidate is the shape AddItem accepts. Price and name are trusted as
// given.
type Candidate struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Image string
}

// Store is the single authoritative in-memory cart for a session. All
// mutation goes through its methods; every mutation is one atomic state
// replacement. Construct it with New and pass the handle around, the
// store is not a package-level singleton.
type Store struct {
	mu        sync.Mutex
	state     CartState
	notifier  notification.Notifier
	observers []Observer
}

func New(seed CartState, notifier notification.Notifier) *Store {
	return &Store{state: seed.clone(), notifier: notifier}
}

func (s *Store) Subscribe(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

func (s *Store) replace(c context.Context, next func(CartState) CartState) CartState {
	s.mu.Lock()
	state := next(s.state.clone())
	s.state = state
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, observer := range observers {
		observer(c, state)
	}
	return state
}

// AddItem increments the quantity of the line with the candidate's id, or
// appends a new line with quantity 1 when no such line exists. It always
// succeeds and emits a success notification.
func (s *Store) AddItem(c context.Context, candidate Candidate) {
	c, span := otel.Tracer.Start(c, "Store AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "Store AddItem").
		Str(log.KeyCartItemID, candidate.ID).
		Str(log.KeyCartItemName, candidate.Name).
		Logger()

	logger.Info().Msg("adding item to cart")
	s.replace(c, func(state CartState) CartState {
		for i, line := range state.Lines {
			if line.ID == candidate.ID {
				state.Lines[i].Quantity++
				return state
			}
		}
		state.Lines = append(state.Lines, CartLine{
			ID:       candidate.ID,
			Name:     candidate.Name,
			Price:    candidate.Price,
			Quantity: 1,
			Image:    candidate.Image,
		})
		return state
	})
	logger.Info().Msg("added item to cart")

	s.notifier.Notify(
		c,
		notification.SeveritySuccess,
		fmt.Sprintf("added %s to cart", candidate.Name),
	)
}

// RemoveItem deletes the line with the given id. An absent id leaves the
// state unchanged; the removal notification fires either way.
func (s *Store) RemoveItem(c context.Context, id string) {
	c, span := otel.Tracer.Start(c, "Store RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "Store RemoveItem").
		Str(log.KeyCartItemID, id).
		Logger()

	logger.Info().Msg("removing item from cart")
	name := id
	found := false
	s.replace(c, func(state CartState) CartState {
		lines := make([]CartLine, 0, len(state.Lines))
		for _, line := range state.Lines {
			if line.ID == id {
				name = line.Name
				found = true
				continue
			}
			lines = append(lines, line)
		}
		state.Lines = lines
		return state
	})
	if !found {
		logger.Debug().Msg("item not in cart, state unchanged")
	}
	logger.Info().Msg("removed item from cart")

	s.notifier.Notify(
		c,
		notification.SeveritySuccess,
		fmt.Sprintf("removed %s from cart", name),
	)
}

// UpdateQuantity sets the line's quantity to exactly the given value. A
// quantity below 1 is equivalent to RemoveItem, including its
// notification; a plain set emits none. An absent id is a no-op.
func (s *Store) UpdateQuantity(c context.Context, id string, quantity int32) {
	c, span := otel.Tracer.Start(c, "Store UpdateQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "Store UpdateQuantity").
		Str(log.KeyCartItemID, id).
		Int32(log.KeyQuantity, quantity).
		Logger()

	if quantity < 1 {
		logger.Info().Msg("quantity below one, removing item instead")
		s.RemoveItem(c, id)
		return
	}

	logger.Info().Msg("updating item quantity")
	found := false
	s.replace(c, func(state CartState) CartState {
		for i, line := range state.Lines {
			if line.ID == id {
				state.Lines[i].Quantity = quantity
				found = true
				return state
			}
		}
		return state
	})
	if !found {
		logger.Debug().Msg("item not in cart, state unchanged")
		return
	}
	logger.Info().Msg("updated item quantity")
}

// ClearCart empties the lines. The salon id stays as it is.
func (s *Store) ClearCart(c context.Context) {
	c, span := otel.Tracer.Start(c, "Store ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "Store ClearCart").
		Logger()

	logger.Info().Msg("clearing cart")
	s.replace(c, func(state CartState) CartState {
		state.Lines = nil
		return state
	})
	logger.Info().Msg("cleared cart")
}

// SetSalonID overwrites the salon id unconditionally. Lines already in
// the cart are not validated against it.
func (s *Store) SetSalonID(c context.Context, id string) {
	c, span := otel.Tracer.Start(c, "Store SetSalonID")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "Store SetSalonID").
		Str(log.KeySalonID, id).
		Logger()

	logger.Info().Msg("setting salon id")
	s.replace(c, func(state CartState) CartState {
		state.SalonID = id
		return state
	})
	logger.Info().Msg("set salon id")
}

// GetTotal derives the running total at call time through the float
// display path. Billing-grade amounts go through money.CalculateTax and
// friends on the decimal path instead.
func (s *Store) GetTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]money.LineTotal, len(s.state.Lines))
	for i, line := range s.state.Lines {
		items[i] = money.LineTotal{Price: line.Price, Quantity: line.Quantity}
	}
	return money.CalculateTotal(items)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}
