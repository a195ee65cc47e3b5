package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /compare", handler.HandleCompare)
	mux.HandleFunc("POST /matrix", handler.HandleMatrix)
}
