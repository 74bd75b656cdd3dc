package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"finance-api/src/handlers"
	"finance-api/src/middleware"
)

func NewRouter(dispatcher *handlers.Dispatcher, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Every ledger operation shares one endpoint and is selected by ?action=.
	r.Handle("/", dispatcher)
	r.Handle("/api/finance", dispatcher)

	return r
}
