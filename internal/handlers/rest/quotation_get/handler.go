package quotation_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"freightmarket/internal/handlers/rest/dto"
	"freightmarket/internal/pkg/middlewares/principal"
	"freightmarket/internal/service/quotation"
	"freightmarket/pkg/logger"
)

type Handler struct {
	log          handlerLogger
	service      Service
	negotiations NegotiationService
}

func New(log handlerLogger, service Service, negotiations NegotiationService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:          handlerLog,
		service:      service,
		negotiations: negotiations,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := principal.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	quotationEntity, err := h.service.Get(r.Context(), id, actor)
	if err != nil {
		switch {
		case errors.Is(err, quotation.ErrQuotationNotFound),
			errors.Is(err, quotation.ErrNotParticipant):
			// a quotation the caller may not see reads as absent
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	history, err := h.negotiations.History(r.Context(), id, actor)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.QuotationDetail{
		Quotation:    dto.FromQuotation(*quotationEntity),
		Negotiations: make([]dto.Negotiation, 0, len(history)),
	}
	for _, offer := range history {
		response.Negotiations = append(response.Negotiations, dto.FromNegotiation(offer))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
