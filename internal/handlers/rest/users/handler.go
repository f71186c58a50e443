// Package users профили пользователей и связи между ними.
package users

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
		log:     log.With(logger.NewField("handler", "users")),
		service: service,
	}
}

// Me профиль вызывающего в том виде, в котором его определил auth middleware.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	caller, err := request.Caller(r)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromUser(caller))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	caller, err := request.Caller(r)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	limit, offset, err := request.Page(r)
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	filter := entities.UserFilter{
		Search: r.URL.Query().Get("search"),
		Limit:  limit,
		Offset: offset,
	}
	if role := request.QueryString(r, "role"); role != nil {
		userRole := entities.UserRole(*role)
		filter.Role = &userRole
	}

	users, err := h.service.ListUsers(r.Context(), caller, filter)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromUsers(users))
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

	user, err := h.service.GetUser(r.Context(), caller, id)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromUser(*user))
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

	var body dto.UserUpdate
	if err := request.DecodeJSON(r, &body); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	user, err := h.service.UpdateUser(r.Context(), caller, id, body.ToModify())
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromUser(*user))
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

	if err := h.service.DeleteUser(r.Context(), caller, id); err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.NoContent(w)
}

func (h *Handler) ListRelations(w http.ResponseWriter, r *http.Request) {
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

	related, err := h.service.ListRelations(r.Context(), caller, id)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, dto.FromUsers(related))
}

func (h *Handler) AddRelation(w http.ResponseWriter, r *http.Request) {
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

	var body dto.RelationCreate
	if err := request.DecodeJSON(r, &body); err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	related, err := h.service.AddRelation(r.Context(), caller, id, body.RelatedUserID)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusCreated, dto.FromUser(*related))
}

func (h *Handler) RemoveRelation(w http.ResponseWriter, r *http.Request) {
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
	relatedID, err := request.PathUUID(r, "related_id")
	if err != nil {
		response.BadRequest(w, h.log, err.Error())
		return
	}

	if err := h.service.RemoveRelation(r.Context(), caller, id, relatedID); err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.NoContent(w)
}
