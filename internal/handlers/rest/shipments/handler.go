package shipments

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
		log:     log.With(logger.NewField("handler", "shipments")),
		service: service,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	caller, err := request.Caller(r)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	filter, err := ParseFilter(r)
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	shipments, err := h.service.ListShipments(r.Context(), caller, filter)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromShipments(shipments))
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

	shipment, err := h.service.GetShipment(r.Context(), caller, id)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromShipment(*shipment))
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

	var body dto.ShipmentUpdate
	if err := request.DecodeJSON(r, &body); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	modify, err := body.ToModify()
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	shipment, err := h.service.UpdateShipment(r.Context(), caller, id, modify)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromShipment(*shipment))
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

	if err := h.service.DeleteShipment(r.Context(), caller, id); err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.NoContent(w)
}

// ParseFilter общий разбор фильтра отправок, используется и для отправок контейнера.
func ParseFilter(r *http.Request) (entities.ShipmentFilter, error) {
	var (
		filter entities.ShipmentFilter
		err    error
	)

	if filter.Limit, filter.Offset, err = request.Page(r); err != nil {
		return filter, err
	}
	if filter.OrderID, err = request.QueryUUID(r, "order_id"); err != nil {
		return filter, err
	}
	if status := request.QueryString(r, "status"); status != nil {
		shipmentStatus := entities.ShipmentStatus(*status)
		filter.Status = &shipmentStatus
	}

	return filter, nil
}
