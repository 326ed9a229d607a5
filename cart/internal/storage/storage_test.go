package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alturino/salon/cart/internal/notification"
	"github.com/Alturino/salon/cart/internal/store"
)

func TestLoadMissingSnapshotSeedsEmptyCart(t *testing.T) {
	c := context.Background()
	state := Load(c, NewMemory())
	assert.Empty(t, state.Lines)
	assert.Empty(t, state.SalonID)
}

func TestLoadMalformedSnapshotSeedsEmptyCart(t *testing.T) {
	c := context.Background()
	backend := NewMemory()
	require.NoError(t, backend.Save(c, []byte("{not json")))

	state := Load(c, backend)
	assert.Empty(t, state.Lines)
	assert.Empty(t, state.SalonID)
}

func TestMemoryDelete(t *testing.T) {
	c := context.Background()
	backend := NewMemory()
	require.NoError(t, backend.Save(c, []byte(`{"lines":null}`)))
	require.NoError(t, backend.Delete(c))

	_, err := backend.Load(c)
	assert.Error(t, err)
}

func TestSaverPersistsEveryStateReplacement(t *testing.T) {
	c := context.Background()
	backend := NewMemory()

	cartStore := store.New(store.CartState{}, notification.NewRecorder())
	cartStore.Subscribe(NewSaver(backend))

	cartStore.SetSalonID(c, "salon-centrum")
	cartStore.AddItem(c, store.Candidate{
		ID:    "haircut",
		Name:  "Knippen dames",
		Price: decimal.NewFromFloat(42.50),
	})
	cartStore.UpdateQuantity(c, "haircut", 2)

	expected := cartStore.Snapshot()
	require.Eventually(t, func() bool {
		return assert.ObjectsAreEqual(expected, Load(c, backend))
	}, 2*time.Second, 10*time.Millisecond, "saves are fire-and-forget, wait for the last one")
}

func TestRestartReproducesPersistedCart(t *testing.T) {
	c := context.Background()
	backend := NewMemory()

	cartStore := store.New(store.CartState{}, notification.NewRecorder())
	cartStore.Subscribe(NewSaver(backend))
	cartStore.SetSalonID(c, "salon-zuid")
	cartStore.AddItem(c, store.Candidate{
		ID:    "manicure",
		Name:  "Manicure",
		Price: decimal.NewFromFloat(32.50),
	})
	cartStore.AddItem(c, store.Candidate{
		ID:    "pedicure",
		Name:  "Pedicure",
		Price: decimal.NewFromFloat(37.50),
	})
	cartStore.AddItem(c, store.Candidate{
		ID:    "manicure",
		Name:  "Manicure",
		Price: decimal.NewFromFloat(32.50),
	})

	expected := cartStore.Snapshot()
	require.Eventually(t, func() bool {
		return assert.ObjectsAreEqual(expected, Load(c, backend))
	}, 2*time.Second, 10*time.Millisecond)

	restarted := store.New(Load(c, backend), notification.NewRecorder())

	state := restarted.Snapshot()
	assert.Equal(t, "salon-zuid", state.SalonID)
	require.Len(t, state.Lines, 2)
	assert.Equal(t, "manicure", state.Lines[0].ID)
	assert.EqualValues(t, 2, state.Lines[0].Quantity)
	assert.Equal(t, "pedicure", state.Lines[1].ID)
	assert.EqualValues(t, 1, state.Lines[1].Quantity)
	assert.True(t, state.Lines[0].Price.Equal(decimal.NewFromFloat(32.50)))
}
