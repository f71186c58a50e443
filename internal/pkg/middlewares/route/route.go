package route

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Template шаблон маршрута mux, иначе сырой путь запроса.
func Template(r *http.Request) string {
	if current := mux.CurrentRoute(r); current != nil {
		if template, err := current.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}
