package offers

import (
	"net/http"

	"freight/internal/entities"
	"freight/internal/handlers/rest/dto"
	"freight/internal/handlers/rest/request"
	"freight/internal/handlers/rest/response"
	"freight/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "offers")),
		service: service,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	caller, err := request.Caller(r)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	var filter entities.OfferFilter
	if filter.Limit, filter.Offset, err = request.Page(r); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}
	if filter.OrderID, err = request.QueryUUID(r, "order_id"); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}
	if status := request.QueryString(r, "status"); status != nil {
		offerStatus := entities.OfferStatus(*status)
		filter.Status = &offerStatus
	}

	offers, err := h.service.ListOffers(r.Context(), caller, filter)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromOffers(offers))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	caller, err := request.Caller(r)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	id, err := request.PathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	offer, err := h.service.GetOffer(r.Context(), caller, id)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromOffer(*offer))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := request.Caller(r)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	var body dto.OfferCreate
	if err := request.DecodeJSON(r, &body); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	offer, err := h.service.CreateOffer(r.Context(), caller, body.ToEntity())
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusCreated, dto.FromOffer(*offer))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	caller, err := request.Caller(r)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	id, err := request.PathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	var body dto.OfferUpdate
	if err := request.DecodeJSON(r, &body); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	offer, err := h.service.UpdateOffer(r.Context(), caller, id, body.ToModify())
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromOffer(*offer))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := request.Caller(r)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	id, err := request.PathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	if err := h.service.DeleteOffer(r.Context(), caller, id); err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.NoContent(w)
}

// SetStatus принятие или отклонение предложения участником заказа.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	caller, err := request.Caller(r)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	id, err := request.PathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	var body dto.OfferStatusUpdate
	if err := request.DecodeJSON(r, &body); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	transition, err := h.service.SetOfferStatus(r.Context(), caller, id, entities.OfferAction(body.Action))
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	fields := []logger.Field{
		logger.NewField("offer_id", transition.Offer.ID),
		logger.NewField("order_id", transition.Order.ID),
		logger.NewField("status", transition.Offer.Status.String()),
	}
	if transition.Shipment != nil {
		fields = append(fields, logger.NewField("shipment_id", transition.Shipment.ID))
	}
	h.log.With(fields...).Info("offer processed")

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromOfferTransition(*transition))
}
