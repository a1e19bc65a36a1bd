package enquiry_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"freightmarket/internal/entities"
	"freightmarket/internal/handlers/rest/dto"
	"freightmarket/internal/pkg/middlewares/principal"
	"freightmarket/internal/service/routematch"
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

	var enquiryDTO dto.EnquiryCreate
	err := json.NewDecoder(r.Body).Decode(&enquiryDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestEntity := entities.ShipmentRequest{
		PickupCity:   enquiryDTO.PickupCity,
		PickupLat:    enquiryDTO.PickupLat,
		PickupLon:    enquiryDTO.PickupLon,
		DropCity:     enquiryDTO.DropCity,
		DropLat:      enquiryDTO.DropLat,
		DropLon:      enquiryDTO.DropLon,
		PickupDate:   enquiryDTO.PickupDate,
		DropDate:     enquiryDTO.DropDate,
		TruckTypeID:  enquiryDTO.TruckTypeID,
		VehicleCount: enquiryDTO.VehicleCount,
		WeightKg:     enquiryDTO.WeightKg,
		BudgetMin:    enquiryDTO.BudgetMin,
		BudgetMax:    enquiryDTO.BudgetMax,
	}

	created, ranges, err := h.service.MatchAndPrice(r.Context(), requestEntity, actor)
	if err != nil {
		switch {
		case errors.Is(err, routematch.ErrInvalidCoordinates),
			errors.Is(err, routematch.ErrInvalidVehicleCount),
			errors.Is(err, routematch.ErrInvalidWeight),
			errors.Is(err, routematch.ErrInvalidSchedule),
			errors.Is(err, routematch.ErrNoPricingData):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, routematch.ErrRoleNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.EnquiryCreateResponse{
		RequestID:     created.ID,
		Miscellaneous: created.Miscellaneous,
		PriceRanges:   make([]dto.PriceRange, 0, len(ranges)),
	}
	for _, band := range ranges {
		response.PriceRanges = append(response.PriceRanges, dto.FromPriceRange(band))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
