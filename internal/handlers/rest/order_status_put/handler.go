package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"freightmarket/internal/entities"
	"freightmarket/internal/handlers/rest/dto"
	"freightmarket/internal/pkg/middlewares/principal"
	"freightmarket/internal/service/order"
	"freightmarket/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updateDTO dto.OrderStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	statusCtx := order.StatusContext{
		DriverID:       updateDTO.DriverID,
		TruckID:        updateDTO.TruckID,
		ActualWeightKg: updateDTO.ActualWeightKg,
		Lat:            updateDTO.Lat,
		Lon:            updateDTO.Lon,
		Notes:          updateDTO.Notes,
	}

	updated, _, err := h.service.UpdateStatus(
		r.Context(),
		orderID,
		entities.OrderStatus(updateDTO.Status),
		actor,
		statusCtx,
	)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingContext):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrInsufficientPermission):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, order.ErrNotParticipant),
			errors.Is(err, order.ErrDriverNotFound),
			errors.Is(err, order.ErrTruckNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidTransition),
			errors.Is(err, order.ErrStatusConflict),
			errors.Is(err, order.ErrOtpNotVerified):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrder(*updated, actor))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
