package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/Alturino/salon/cart/internal/common/otel"
	"github.com/Alturino/salon/cart/internal/store"
	"github.com/Alturino/salon/cart/pkg/request"
	"github.com/Alturino/salon/cart/pkg/response"
	"github.com/Alturino/salon/catalog"
	commonErrors "github.com/Alturino/salon/internal/errors"
	commonHttp "github.com/Alturino/salon/internal/http"
	"github.com/Alturino/salon/internal/log"
)

type CartController struct {
	store *store.Store
}

func AttachCartController(mux *mux.Router, store *store.Store) {
	controller := CartController{store: store}

	router := mux.PathPrefix("/cart").Subrouter()
	router.HandleFunc("", controller.FindCart).Methods(http.MethodGet)
	router.HandleFunc("", controller.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/items", controller.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/items/{itemId}", controller.UpdateCartItem).Methods(http.MethodPut)
	router.HandleFunc("/items/{itemId}", controller.RemoveCartItem).Methods(http.MethodDelete)
	router.HandleFunc("/salon", controller.SetSalon).Methods(http.MethodPut)

	mux.HandleFunc("/services", controller.FindServices).Methods(http.MethodGet)
}

func (t CartController) FindCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController FindCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController FindCart").
		Str(log.KeyProcess, "reading cart snapshot").
		Logger()

	logger.Info().Msg("reading cart snapshot")
	state := t.store.Snapshot()
	total := t.store.GetTotal()
	cart := response.NewCart(state, total)
	logger = logger.With().
		Int(log.KeyCartItems, len(cart.Items)).
		Float64(log.KeyTotal, total).
		Logger()
	logger.Info().Msg("read cart snapshot")

	commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "cart found",
		"data": map[string]interface{}{
			"cart": cart,
		},
	})
}

func (t CartController) AddCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController AddCartItem").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.AddItem{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating requestbody").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	if reqBody.Price.IsNegative() {
		err := fmt.Errorf("price=%s must not be negative", reqBody.Price.String())
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().
		Str(log.KeyProcess, "adding item to cart").
		Str(log.KeyCartItemID, reqBody.ID).
		Logger()
	logger.Info().Msg("adding item to cart")
	c = logger.WithContext(c)
	t.store.AddItem(c, store.Candidate{
		ID:    reqBody.ID,
		Name:  reqBody.Name,
		Price: reqBody.Price,
		Image: reqBody.Image,
	})
	logger.Info().Msg("added item to cart")

	commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("added itemId=%s to cart", reqBody.ID),
		"data": map[string]interface{}{
			"cart": response.NewCart(t.store.Snapshot(), t.store.GetTotal()),
		},
	})
}

func (t CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController UpdateCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController UpdateCartItem").
		Logger()

	itemId := mux.Vars(r)["itemId"]
	logger = logger.With().Str(log.KeyCartItemID, itemId).Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.UpdateQuantity{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().
		Str(log.KeyProcess, "updating item quantity").
		Int32(log.KeyQuantity, reqBody.Quantity).
		Logger()
	logger.Info().Msg("updating item quantity")
	c = logger.WithContext(c)
	t.store.UpdateQuantity(c, itemId, reqBody.Quantity)
	logger.Info().Msg("updated item quantity")

	commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("updated itemId=%s", itemId),
		"data": map[string]interface{}{
			"cart": response.NewCart(t.store.Snapshot(), t.store.GetTotal()),
		},
	})
}

func (t CartController) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController RemoveCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController RemoveCartItem").
		Logger()

	itemId := mux.Vars(r)["itemId"]
	logger = logger.With().
		Str(log.KeyCartItemID, itemId).
		Str(log.KeyProcess, "removing item from cart").
		Logger()

	logger.Info().Msg("removing item from cart")
	c = logger.WithContext(c)
	t.store.RemoveItem(c, itemId)
	logger.Info().Msg("removed item from cart")

	commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("removed itemId=%s from cart", itemId),
		"data": map[string]interface{}{
			"cart": response.NewCart(t.store.Snapshot(), t.store.GetTotal()),
		},
	})
}

func (t CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController ClearCart").
		Str(log.KeyProcess, "clearing cart").
		Logger()

	logger.Info().Msg("clearing cart")
	c = logger.WithContext(c)
	t.store.ClearCart(c)
	logger.Info().Msg("cleared cart")

	commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "cleared cart",
		"data": map[string]interface{}{
			"cart": response.NewCart(t.store.Snapshot(), t.store.GetTotal()),
		},
	})
}

func (t CartController) SetSalon(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController SetSalon")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController SetSalon").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := request.SetSalon{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating requestbody").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		commonErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().
		Str(log.KeyProcess, "setting salon id").
		Str(log.KeySalonID, reqBody.SalonID).
		Logger()
	logger.Info().Msg("setting salon id")
	c = logger.WithContext(c)
	t.store.SetSalonID(c, reqBody.SalonID)
	logger.Info().Msg("set salon id")

	commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("set salonId=%s", reqBody.SalonID),
	})
}

func (t CartController) FindServices(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CartController FindServices")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartController FindServices").
		Str(log.KeyProcess, "listing services").
		Logger()

	logger.Info().Msg("listing services")
	services := response.NewSalonServices(catalog.Seed())
	logger.Info().Msgf("listed %d services", len(services))

	commonHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "services found",
		"data": map[string]interface{}{
			"services": services,
		},
	})
}
