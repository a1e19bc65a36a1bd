package quotation_accept_post

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
	quotationID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	accepted, order, err := h.service.AcceptDirect(r.Context(), quotationID, actor)
	if err != nil {
		switch {
		case errors.Is(err, quotation.ErrRoleNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, quotation.ErrQuotationNotFound),
			errors.Is(err, quotation.ErrNotParticipant):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, quotation.ErrAlreadyResolved),
			errors.Is(err, quotation.ErrQuotationExpired),
			errors.Is(err, quotation.ErrRequestAlreadyFulfilled):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.QuotationAcceptResponse{
		Quotation:   dto.FromQuotation(*accepted),
		Order:       dto.FromOrder(*order, actor),
		FinalAmount: accepted.CurrentAmount,
		Savings:     accepted.TotalAmount.Sub(accepted.CurrentAmount).Abs(),
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
