package main

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
)

const DefaultGreeting = "Hello! CI/CD pipeline working."

// NewRouter returns a router serving greeting on GET (and HEAD) /. Anything
// else falls through to the mux defaults: 404 for unknown paths, 405 for
// other methods.
func NewRouter(greeting string) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", GreetingHandler(greeting)).Methods(http.MethodGet, http.MethodHead)
	return r
}

func GreetingHandler(greeting string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, greeting)
	}
}
