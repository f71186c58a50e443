package ping_get

import (
	"net/http"
	"time"

	"freight/internal/handlers/rest/dto"
	"freight/internal/handlers/rest/response"
	"freight/pkg/logger"
)

type Handler struct {
	log handlerLogger
	now func() time.Time
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ping")),
		now: time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	response.WriteJSON(w, h.log, http.StatusOK, dto.Ping{
		Message: "pong",
		Time:    h.now().UTC(),
	})
}
