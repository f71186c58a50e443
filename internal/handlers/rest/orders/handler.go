package orders

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
		log:     log.With(logger.NewField("handler", "orders")),
		service: service,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	caller, err := request.Caller(r)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	orders, err := h.service.ListOrders(r.Context(), caller, filter)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromOrders(orders))
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

	order, err := h.service.GetOrder(r.Context(), caller, id)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromOrder(*order))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	caller, err := request.Caller(r)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	var body dto.OrderCreate
	if err := request.DecodeJSON(r, &body); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	order, cargo, err := body.ToEntity()
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	created, err := h.service.CreateOrder(r.Context(), caller, order, cargo)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("order_id", created.ID),
		logger.NewField("code", created.Code),
	).Info("order created")

	response.WriteJSON(w, h.log, http.StatusCreated, dto.FromOrder(*created))
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

	var body dto.OrderUpdate
	if err := request.DecodeJSON(r, &body); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	modify, err := body.ToModify()
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	order, err := h.service.UpdateOrder(r.Context(), caller, id, modify)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromOrder(*order))
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

	if err := h.service.DeleteOrder(r.Context(), caller, id); err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.NoContent(w)
}

func parseFilter(r *http.Request) (entities.OrderFilter, error) {
	var (
		filter entities.OrderFilter
		err    error
	)

	if filter.Limit, filter.Offset, err = request.Page(r); err != nil {
		return filter, err
	}
	if filter.SenderID, err = request.QueryUUID(r, "sender_id"); err != nil {
		return filter, err
	}
	if filter.ReceiverID, err = request.QueryUUID(r, "receiver_id"); err != nil {
		return filter, err
	}
	if filter.CounterpartID, err = request.QueryUUID(r, "counterpart_id"); err != nil {
		return filter, err
	}
	if status := request.QueryString(r, "status"); status != nil {
		orderStatus := entities.OrderStatus(*status)
		filter.Status = &orderStatus
	}
	filter.Search = r.URL.Query().Get("search")

	return filter, nil
}
