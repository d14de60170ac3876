// Package mockapi serves the fixture pet store API locally, so the demo can
// run against a real HTTP endpoint without the hosted service.
package mockapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fentz26/petstore-agent/internal/petstore"
)

// Server provides the fixture pet store HTTP API.
type Server struct {
	pets   []petstore.Pet
	addr   string
	server *http.Server
}

// NewServer creates a fixture server. A nil pet slice uses the built-in
// fixtures.
func NewServer(pets []petstore.Pet, addr string) *Server {
	if pets == nil {
		pets = petstore.Fixtures()
	}
	return &Server{pets: pets, addr: addr}
}

// Handler returns the API routes. Exposed for httptest use.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/pets", s.handleListPets)
	mux.HandleFunc("/pets/", s.handlePetsPath)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return mux
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("Serving fixture pet store API on %s", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// handleListPets handles GET /pets
func (s *Server) handleListPets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.pets)
}

// handlePetsPath handles /pets/findByStatus and /pets/{id}
func (s *Server) handlePetsPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/pets/")

	if rest == "findByStatus" {
		s.findByStatus(w, r)
		return
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		http.Error(w, "invalid pet id", http.StatusBadRequest)
		return
	}

	for _, pet := range s.pets {
		if pet.ID == id {
			writeJSON(w, http.StatusOK, pet)
			return
		}
	}

	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": "pet " + rest + " not found",
	})
}

func (s *Server) findByStatus(w http.ResponseWriter, r *http.Request) {
	status := petstore.Status(r.URL.Query().Get("status"))
	if !status.Valid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	matched := petstore.FilterByStatus(s.pets, status)
	if matched == nil {
		matched = []petstore.Pet{}
	}
	writeJSON(w, http.StatusOK, matched)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
