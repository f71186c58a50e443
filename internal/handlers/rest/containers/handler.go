// Package containers контейнеры, их связи с отправками и позиции груза.
package containers

import (
	"net/http"

	"freight/internal/entities"
	"freight/internal/handlers/rest/dto"
	"freight/internal/handlers/rest/request"
	"freight/internal/handlers/rest/response"
	"freight/internal/handlers/rest/shipments"
	"freight/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "containers")),
		service: service,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := request.Page(r)
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	containers, err := h.service.ListContainers(r.Context(), entities.ContainerFilter{
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromContainers(containers))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	container, err := h.service.GetContainer(r.Context(), id)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromContainer(*container))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var body dto.ContainerCreate
	if err := request.DecodeJSON(r, &body); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	container, err := h.service.CreateContainer(r.Context(), body.ToEntity())
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusCreated, dto.FromContainer(*container))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.PathUUID(r, "id")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	var body dto.ContainerUpdate
	if err := request.DecodeJSON(r, &body); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	container, err := h.service.UpdateContainer(r.Context(), id, body.ToModify())
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromContainer(*container))
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

	if err := h.service.DeleteContainer(r.Context(), caller, id); err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.NoContent(w)
}

func (h *Handler) Link(w http.ResponseWriter, r *http.Request) {
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

	var body dto.ContainerLinkCreate
	if err := request.DecodeJSON(r, &body); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	link, err := h.service.Link(r.Context(), caller, id, body.ShipmentID, body.ToItems())
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("container_id", link.ContainerID),
		logger.NewField("shipment_id", link.ShipmentID),
		logger.NewField("items", len(link.Items)),
	).Info("container linked")

	response.WriteJSON(w, h.log, http.StatusCreated, dto.FromContainerLink(*link))
}

func (h *Handler) Unlink(w http.ResponseWriter, r *http.Request) {
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
	shipmentID, err := request.PathUUID(r, "shipment_id")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	if err := h.service.Unlink(r.Context(), caller, id, shipmentID); err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.NoContent(w)
}

func (h *Handler) ListShipments(w http.ResponseWriter, r *http.Request) {
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

	filter, err := shipments.ParseFilter(r)
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	linked, err := h.service.ListShipments(r.Context(), caller, id, filter)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromShipments(linked))
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.service.ListItems(r.Context(), caller, id)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromItems(items))
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
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

	var body dto.ItemCreate
	if err := request.DecodeJSON(r, &body); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	item, err := h.service.AddItem(r.Context(), caller, id, body.ToEntity())
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusCreated, dto.FromItem(*item))
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
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
	itemID, err := request.PathUUID(r, "item_id")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	var body dto.ItemUpdate
	if err := request.DecodeJSON(r, &body); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	item, err := h.service.UpdateItem(r.Context(), caller, id, itemID, body.ToModify())
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromItem(*item))
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
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
	itemID, err := request.PathUUID(r, "item_id")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	if err := h.service.DeleteItem(r.Context(), caller, id, itemID); err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.NoContent(w)
}
