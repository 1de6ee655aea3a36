package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/arcanaland/richcard/internal/cardfile"
)

// Server serves the card library as JSON so fulfillment payloads can be
// inspected without a device
type Server struct {
	addr    string
	library *cardfile.Library
}

func NewServer(addr string, library *cardfile.Library) *Server {
	return &Server{
		addr:    addr,
		library: library,
	}
}

// Handler returns the router with all routes registered
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/cards", s.listCards).Methods(http.MethodGet)
	router.HandleFunc("/cards/{name}", s.getCard).Methods(http.MethodGet)
	router.HandleFunc("/cards/{name}/prompt", s.getPrompt).Methods(http.MethodGet)

	router.Use(logRequests)
	return router
}

// Run serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("shutting down server: %v", err)
		}
	}()

	log.Printf("listening requests at %v", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) listCards(w http.ResponseWriter, r *http.Request) {
	names, err := s.library.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}

	writeJSON(w, map[string][]string{"cards": names})
}

func (s *Server) getCard(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.open(w, r)
	if !ok {
		return
	}

	writeJSON(w, doc.BuildCard())
}

func (s *Server) getPrompt(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.open(w, r)
	if !ok {
		return
	}

	p, err := doc.BuildPrompt()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{"prompt": p})
}

// open loads the card named in the route. Names are looked up in the
// library only, never as paths.
func (s *Server) open(w http.ResponseWriter, r *http.Request) (*cardfile.Document, bool) {
	name := mux.Vars(r)["name"]

	doc, err := s.library.OpenName(name)
	if errors.Is(err, cardfile.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return doc, true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Debug("handled request")
	})
}
