package negotiation_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"freightmarket/internal/entities"
	"freightmarket/internal/handlers/rest/dto"
	"freightmarket/internal/pkg/middlewares/principal"
	"freightmarket/internal/service/negotiation"
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

	var offerDTO dto.NegotiationCreate
	err = json.NewDecoder(r.Body).Decode(&offerDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var breakdown *entities.Breakdown
	if offerDTO.Breakdown != nil {
		breakdown = &entities.Breakdown{
			Base:      offerDTO.Breakdown.Base,
			Fuel:      offerDTO.Breakdown.Fuel,
			Toll:      offerDTO.Breakdown.Toll,
			Loading:   offerDTO.Breakdown.Loading,
			Unloading: offerDTO.Breakdown.Unloading,
			Other:     offerDTO.Breakdown.Other,
		}
	}

	created, err := h.service.CreateOffer(
		r.Context(),
		quotationID,
		actor,
		offerDTO.ProposedAmount,
		breakdown,
		offerDTO.Message,
	)
	if err != nil {
		switch {
		case errors.Is(err, negotiation.ErrInvalidAmount),
			errors.Is(err, negotiation.ErrBreakdownMismatch):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, negotiation.ErrRoleNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, negotiation.ErrQuotationNotFound),
			errors.Is(err, negotiation.ErrNotParticipant):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, negotiation.ErrQuotationNotNegotiable),
			errors.Is(err, negotiation.ErrQuotationExpired),
			errors.Is(err, negotiation.ErrOutOfTurn):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromNegotiation(*created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
