/*
Package api
File: server.go
Description:
    The HTTP surface of the card forge: catalog listing, card pricing and
    rendering, UI export import, tribe management, mana-curve audits and
    the card document schema. Handlers decode JSON, call the pure engines
    and encode the result; the only shared mutable state is the tribe
    registry and the hot-reloaded catalog.
*/

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/xtding233/cardforge/internal/audit"
	"github.com/xtding233/cardforge/internal/card"
	"github.com/xtding233/cardforge/internal/catalog"
	"github.com/xtding233/cardforge/internal/i18n"
	"github.com/xtding233/cardforge/internal/tribes"
)

const maxBody = 1 << 20

// Server wires the engines to HTTP. Catalog is called per request so a
// hot reload takes effect without restarting.
type Server struct {
	Catalog func() *catalog.Catalog
	Tribes  *tribes.Registry
	Hub     *Hub
	Lang    i18n.Lang
	Logger  *zap.Logger
}

func (s *Server) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Routes returns the request multiplexer.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	mux.HandleFunc("POST /api/calculate", s.handleCalculate)
	mux.HandleFunc("POST /api/describe", s.handleDescribe)
	mux.HandleFunc("POST /api/import", s.handleImport)

	mux.HandleFunc("GET /api/tribes", s.handleListTribes)
	mux.HandleFunc("POST /api/tribes", s.handleAddTribe)
	mux.HandleFunc("POST /api/tribes/reset", s.handleResetTribes)
	mux.HandleFunc("PATCH /api/tribes/{id}", s.handleUpdateTribe)
	mux.HandleFunc("DELETE /api/tribes/{id}", s.handleDeleteTribe)

	mux.HandleFunc("GET /api/audit", s.handleAudit)
	mux.HandleFunc("GET /api/schema/card", s.handleSchema)
	if s.Hub != nil {
		mux.HandleFunc("GET /ws", func(w http.ResponseWriter, r *http.Request) {
			ServeWs(s.Hub, s.handleSocket, w, r)
		})
	}
	return mux
}

// BroadcastTribes pushes the tribe table to every socket after each
// registry change. The returned func stops it.
func (s *Server) BroadcastTribes() (cancel func()) {
	return s.Tribes.Subscribe(func(ts []catalog.Tribe) {
		if err := s.Hub.Publish("tribes_changed", ts); err != nil {
			s.logger().Warn("broadcast tribes", zap.Error(err))
		}
	})
}

// lang picks ?lang=, then the server default.
func (s *Server) lang(r *http.Request) (i18n.Lang, error) {
	q := r.URL.Query().Get("lang")
	if q == "" {
		if s.Lang != "" {
			return s.Lang, nil
		}
		return i18n.Default, nil
	}
	l, ok := i18n.Parse(q)
	if !ok {
		return "", i18n.ErrUnsupportedLanguage
	}
	return l, nil
}

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fail maps err onto a status code and logs it.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	s.logger().Warn("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	writeJSON(w, status, errorResp{Error: err.Error()})
}

var errBadJSON = errors.New("malformed JSON body")

func statusOf(err error) int {
	switch {
	case errors.Is(err, tribes.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, tribes.ErrNeutralTribe):
		return http.StatusConflict
	case errors.Is(err, errBadJSON),
		errors.Is(err, card.ErrInvalidDocument),
		errors.Is(err, i18n.ErrUnsupportedLanguage),
		errors.Is(err, tribes.ErrEmptyName),
		errors.Is(err, tribes.ErrInvalidColor),
		errors.Is(err, tribes.ErrUnknownPreset),
		errors.Is(err, audit.ErrBadParams),
		errors.Is(err, audit.ErrUnknownType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(v); err != nil {
		return errors.Join(errBadJSON, err)
	}
	return nil
}
