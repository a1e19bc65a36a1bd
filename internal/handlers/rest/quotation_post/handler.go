package quotation_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightmarket/internal/entities"
	"freightmarket/internal/handlers/rest/dto"
	"freightmarket/internal/pkg/middlewares/principal"
	"freightmarket/internal/service/quotation"
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

	var quotationDTO dto.QuotationCreate
	err := json.NewDecoder(r.Body).Decode(&quotationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.QuotationItem, 0, len(quotationDTO.Items))
	for _, item := range quotationDTO.Items {
		items = append(items, entities.QuotationItem{
			TruckTypeID: item.TruckTypeID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	created, err := h.service.Submit(
		r.Context(),
		quotationDTO.RequestID,
		actor,
		items,
		quotationDTO.TotalAmount,
		quotationDTO.ValidityHours,
	)
	if err != nil {
		switch {
		case errors.Is(err, quotation.ErrInvalidAmount),
			errors.Is(err, quotation.ErrInvalidValidity),
			errors.Is(err, quotation.ErrNoItems),
			errors.Is(err, quotation.ErrItemTotalMismatch):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, quotation.ErrRoleNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, quotation.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, quotation.ErrQuotationExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromQuotation(*created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
