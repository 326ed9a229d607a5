package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Alturino/salon/cart/internal/common/otel"
	"github.com/Alturino/salon/cart/internal/store"
	commonErrors "github.com/Alturino/salon/internal/errors"
	"github.com/Alturino/salon/internal/log"
)

// SnapshotKey is the single fixed key the whole cart state lives under.
const SnapshotKey = "salon:cart"

// Backend is a key-value store holding the serialized cart snapshot.
// Load returns commonErrors.ErrSnapshotMissing when nothing is stored.
type Backend interface {
	Load(c context.Context) ([]byte, error)
	Save(c context.Context, value []byte) error
	Delete(c context.Context) error
}

// Load reads and decodes the persisted snapshot. A missing or malformed
// snapshot seeds an empty cart, it never fails the caller.
func Load(c context.Context, backend Backend) store.CartState {
	c, span := otel.Tracer.Start(c, "storage Load")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "storage Load").
		Str(log.KeySnapshotKey, SnapshotKey).
		Logger()

	logger.Info().Msg("loading cart snapshot")
	value, err := backend.Load(c)
	if errors.Is(err, commonErrors.ErrSnapshotMissing) {
		logger.Info().Msg("no cart snapshot stored, starting with empty cart")
		return store.CartState{}
	}
	if err != nil {
		err = fmt.Errorf("failed loading cart snapshot with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Warn().Err(err).Msg(err.Error())
		return store.CartState{}
	}

	state := store.CartState{}
	if err := json.Unmarshal(value, &state); err != nil {
		err = fmt.Errorf(
			"failed decoding cart snapshot with error=%w",
			errors.Join(commonErrors.ErrMalformedSnapshot, err),
		)
		commonErrors.HandleError(err, span)
		logger.Warn().Err(err).Msg(err.Error())
		return store.CartState{}
	}
	logger.Info().Int(log.KeyCartItems, len(state.Lines)).Msg("loaded cart snapshot")
	return state
}

type pendingSave struct {
	c     context.Context
	value []byte
}

// NewSaver returns the save-on-change observer. Snapshots are handed to a
// single worker goroutine so saves land in mutation order while the
// mutating call never waits on the backend. A failed save is logged and
// recorded on the span but never surfaced to the mutating call.
func NewSaver(backend Backend) store.Observer {
	pending := make(chan pendingSave, 64)
	go func() {
		for save := range pending {
			c, span := otel.Tracer.Start(save.c, "Saver Save")

			logger := zerolog.Ctx(c).
				With().
				Str(log.KeyTag, "Saver Save").
				Str(log.KeySnapshotKey, SnapshotKey).
				Logger()

			if err := backend.Save(c, save.value); err != nil {
				err = fmt.Errorf("failed saving cart snapshot with error=%w", err)
				commonErrors.HandleError(err, span)
				logger.Error().Err(err).Msg(err.Error())
			} else {
				logger.Debug().Msg("saved cart snapshot")
			}
			span.End()
		}
	}()

	return func(c context.Context, state store.CartState) {
		c, span := otel.Tracer.Start(c, "Saver Enqueue")
		defer span.End()

		logger := zerolog.Ctx(c).
			With().
			Str(log.KeyTag, "Saver Enqueue").
			Str(log.KeySnapshotKey, SnapshotKey).
			Logger()

		value, err := json.Marshal(state)
		if err != nil {
			err = fmt.Errorf("failed encoding cart snapshot with error=%w", err)
			commonErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}

		select {
		case pending <- pendingSave{c: context.WithoutCancel(c), value: value}:
		default:
			// the in-memory mutation already happened, dropping the
			// snapshot only loses durability for this change
			logger.Warn().Msg("snapshot queue full, dropping cart snapshot")
		}
	}
}
