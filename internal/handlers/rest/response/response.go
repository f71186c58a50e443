// Package response общий формат JSON ответов и ошибок REST обработчиков.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"freight/pkg/apperr"
	"freight/pkg/logger"
)

const internalErrorMessage = "internal server error"

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type errorBody struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// BadRequest ответ на неразбираемый запрос до вызова сервиса.
func BadRequest(w http.ResponseWriter, log errorLogger, msg string) {
	WriteMessage(w, log, http.StatusBadRequest, msg)
}

func WriteMessage(w http.ResponseWriter, log errorLogger, status int, msg string) {
	WriteJSON(w, log, status, errorBody{Error: msg})
}

// WriteError код ответа выводится из категории ошибки. Неклассифицированные
// ошибки логируются целиком, клиент получает обезличенное сообщение.
func WriteError(w http.ResponseWriter, log errorLogger, err error) {
	status := StatusOf(err)

	msg := apperr.PublicMessage(err)
	if status == http.StatusInternalServerError || msg == "" {
		log.With(
			logger.NewField("error", err),
		).Error("unexpected error")
		msg = internalErrorMessage
	}

	WriteJSON(w, log, status, errorBody{Error: msg})
}

func StatusOf(err error) int {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Kind() {
	case apperr.KindValidation, apperr.KindReference:
		return http.StatusBadRequest
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindScope:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
