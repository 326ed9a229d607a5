package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Alturino/salon/cart/internal/notification"
)

func haircut() Candidate {
	return Candidate{ID: "haircut", Name: "Knippen dames", Price: decimal.NewFromFloat(42.50)}
}

func manicure() Candidate {
	return Candidate{ID: "manicure", Name: "Manicure", Price: decimal.NewFromFloat(32.50)}
}

func TestAddItemIncrementsQuantityPerCall(t *testing.T) {
	c := context.Background()
	cartStore := New(CartState{}, notification.NewRecorder())

	calls := 5
	for range calls {
		cartStore.AddItem(c, haircut())
	}

	state := cartStore.Snapshot()
	assert.Len(t, state.Lines, 1)
	assert.EqualValues(t, calls, state.Lines[0].Quantity)
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	c := context.Background()
	cartStore := New(CartState{}, notification.NewRecorder())

	cartStore.AddItem(c, haircut())
	cartStore.AddItem(c, manicure())
	cartStore.AddItem(c, haircut())

	state := cartStore.Snapshot()
	assert.Len(t, state.Lines, 2)
	assert.Equal(t, "haircut", state.Lines[0].ID)
	assert.Equal(t, "manicure", state.Lines[1].ID)
}

func TestAddThenRemoveRestoresPriorLines(t *testing.T) {
	c := context.Background()
	cartStore := New(CartState{}, notification.NewRecorder())

	cartStore.AddItem(c, haircut())
	prior := cartStore.Snapshot()

	cartStore.AddItem(c, manicure())
	cartStore.RemoveItem(c, "manicure")

	assert.Equal(t, prior.Lines, cartStore.Snapshot().Lines)
}

func TestUpdateQuantityBelowOneRemovesLine(t *testing.T) {
	tests := []struct {
		name     string
		quantity int32
	}{
		{name: "given quantity zero should remove line", quantity: 0},
		{name: "given negative quantity should remove line", quantity: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := context.Background()
			recorder := notification.NewRecorder()
			cartStore := New(CartState{}, recorder)

			cartStore.AddItem(c, haircut())
			cartStore.UpdateQuantity(c, "haircut", tt.quantity)

			assert.Empty(t, cartStore.Snapshot().Lines)

			events := recorder.Events()
			assert.Len(t, events, 2, "only the add and remove notifications should fire")
			assert.Equal(t, notification.SeveritySuccess, events[1].Severity)
			assert.Contains(t, events[1].Message, "removed")
		})
	}
}

func TestUpdateQuantitySetsExactValueWithoutNotification(t *testing.T) {
	c := context.Background()
	recorder := notification.NewRecorder()
	cartStore := New(CartState{}, recorder)

	cartStore.AddItem(c, haircut())
	cartStore.UpdateQuantity(c, "haircut", 3)
	cartStore.UpdateQuantity(c, "haircut", 7)

	state := cartStore.Snapshot()
	assert.EqualValues(t, 7, state.Lines[0].Quantity)
	assert.Len(t, recorder.Events(), 1, "a pure quantity set should not notify")
}

func TestUpdateQuantityUnknownIdIsNoOp(t *testing.T) {
	c := context.Background()
	recorder := notification.NewRecorder()
	cartStore := New(CartState{}, recorder)

	cartStore.AddItem(c, haircut())
	prior := cartStore.Snapshot()

	cartStore.UpdateQuantity(c, "unknown", 4)

	assert.Equal(t, prior, cartStore.Snapshot())
	assert.Len(t, recorder.Events(), 1)
}

func TestRemoveItemUnknownIdLeavesStateUnchanged(t *testing.T) {
	c := context.Background()
	cartStore := New(CartState{}, notification.NewRecorder())

	cartStore.AddItem(c, haircut())
	prior := cartStore.Snapshot()

	cartStore.RemoveItem(c, "unknown")

	assert.Equal(t, prior.Lines, cartStore.Snapshot().Lines)
}

func TestGetTotalDerivedAtCallTime(t *testing.T) {
	c := context.Background()
	cartStore := New(CartState{}, notification.NewRecorder())

	cartStore.AddItem(c, Candidate{
		ID:    "coloring",
		Name:  "Kleuren",
		Price: decimal.NewFromFloat(10.00),
	})
	assert.Equal(t, 10.00, cartStore.GetTotal())

	cartStore.UpdateQuantity(c, "coloring", 3)
	assert.Equal(t, 30.00, cartStore.GetTotal())
}

func TestClearCartKeepsSalonID(t *testing.T) {
	c := context.Background()
	cartStore := New(CartState{}, notification.NewRecorder())

	cartStore.SetSalonID(c, "salon-centrum")
	cartStore.AddItem(c, haircut())
	cartStore.AddItem(c, manicure())
	cartStore.ClearCart(c)

	state := cartStore.Snapshot()
	assert.Empty(t, state.Lines)
	assert.Equal(t, "salon-centrum", state.SalonID)
}

func TestSetSalonIDOverwritesUnconditionally(t *testing.T) {
	c := context.Background()
	cartStore := New(CartState{}, notification.NewRecorder())

	cartStore.AddItem(c, haircut())
	cartStore.SetSalonID(c, "salon-centrum")
	cartStore.SetSalonID(c, "salon-zuid")

	state := cartStore.Snapshot()
	assert.Equal(t, "salon-zuid", state.SalonID)
	assert.Len(t, state.Lines, 1, "changing salon must not touch the lines")
}

func TestObserversRunSynchronouslyInMutationOrder(t *testing.T) {
	c := context.Background()
	cartStore := New(CartState{}, notification.NewRecorder())

	var seen []CartState
	cartStore.Subscribe(func(_ context.Context, state CartState) {
		seen = append(seen, state)
	})

	cartStore.AddItem(c, haircut())
	cartStore.UpdateQuantity(c, "haircut", 2)
	cartStore.ClearCart(c)

	assert.Len(t, seen, 3, "observer fires once per state replacement, before the call returns")
	assert.EqualValues(t, 1, seen[0].Lines[0].Quantity)
	assert.EqualValues(t, 2, seen[1].Lines[0].Quantity)
	assert.Empty(t, seen[2].Lines)
}

func TestSnapshotIsACopy(t *testing.T) {
	c := context.Background()
	cartStore := New(CartState{}, notification.NewRecorder())

	cartStore.AddItem(c, haircut())
	state := cartStore.Snapshot()
	state.Lines[0].Quantity = 99

	assert.EqualValues(t, 1, cartStore.Snapshot().Lines[0].Quantity)
}
