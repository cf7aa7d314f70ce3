package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/xtding233/cardforge/internal/audit"
	"github.com/xtding233/cardforge/internal/balance"
	"github.com/xtding233/cardforge/internal/card"
	"github.com/xtding233/cardforge/internal/catalog"
	"github.com/xtding233/cardforge/internal/describe"
	"github.com/xtding233/cardforge/internal/i18n"
	"github.com/xtding233/cardforge/internal/tribes"
)

// Request DTOs

type AddTribeRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type DescribeResponse struct {
	Language i18n.Lang `json:"language"`
	Text     string    `json:"text"`
	VP       float64   `json:"vp"`
}

// PreviewRequest is what the editor sends over the socket.
type PreviewRequest struct {
	Card card.CardDoc `json:"card"`
	Lang i18n.Lang    `json:"lang,omitempty"`
}

const (
	defaultTrials = 1000
	defaultSeed   = 1
)

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	lang, err := s.lang(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Catalog().Listing(lang))
}

func (s *Server) preview(doc card.CardDoc, lang i18n.Lang) (describe.Preview, error) {
	cat := s.Catalog()
	c, err := doc.Build(cat)
	if err != nil {
		return describe.Preview{}, err
	}
	return describe.Render(c, cat, s.Tribes, lang), nil
}

// handleCalculate prices a card document and renders its text.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	lang, err := s.lang(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var doc card.CardDoc
	if err := decode(w, r, &doc); err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := s.preview(doc, lang)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleDescribe renders a single ability. The VP is priced against an
// empty minion, so self-copy effects read as 0.
func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	lang, err := s.lang(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var doc card.AbilityDoc
	if err := decode(w, r, &doc); err != nil {
		s.fail(w, r, err)
		return
	}
	cat := s.Catalog()
	a := doc.Build(cat)
	writeJSON(w, http.StatusOK, DescribeResponse{
		Language: lang,
		Text:     describe.Ability(a, cat, s.Tribes, lang),
		VP:       balance.AbilityVP(a, card.Card{Type: catalog.Minion}, cat),
	})
}

// handleImport accepts the editor's saved JSON as-is and returns the
// normalized card with its preview.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	lang, err := s.lang(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		s.fail(w, r, fmt.Errorf("%w: %v", errBadJSON, err))
		return
	}
	cat := s.Catalog()
	c, err := card.ParseExport(body, cat)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, describe.Render(c, cat, s.Tribes, lang))
}

func (s *Server) handleListTribes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Tribes.List())
}

func (s *Server) handleAddTribe(w http.ResponseWriter, r *http.Request) {
	var req AddTribeRequest
	if err := decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	t, err := s.Tribes.Add(req.Name, req.Color)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleUpdateTribe(w http.ResponseWriter, r *http.Request) {
	var p tribes.Patch
	if err := decode(w, r, &p); err != nil {
		s.fail(w, r, err)
		return
	}
	t, err := s.Tribes.Update(catalog.TribeID(r.PathValue("id")), p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDeleteTribe(w http.ResponseWriter, r *http.Request) {
	if err := s.Tribes.Delete(catalog.TribeID(r.PathValue("id"))); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleResetTribes(w http.ResponseWriter, r *http.Request) {
	p := tribes.Preset(r.URL.Query().Get("preset"))
	if p == "" {
		p = tribes.Midgard
	}
	if err := s.Tribes.Reset(p); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Tribes.List())
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", audit.ErrBadParams, key)
	}
	return n, nil
}

// handleAudit runs a seeded sweep. Without ?seed= the sweep uses seed 1 so
// repeated requests agree.
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	trials, err := queryInt(r, "trials", defaultTrials)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	seed, err := queryInt(r, "seed", defaultSeed)
	if err != nil || seed < 0 {
		s.fail(w, r, fmt.Errorf("%w: invalid seed", audit.ErrBadParams))
		return
	}
	st, err := audit.Run(s.Catalog(), audit.Params{
		Trials: trials,
		Seed:   uint64(seed),
		Type:   catalog.CardType(r.URL.Query().Get("type")),
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	b, err := card.Schema()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	w.Write(b)
}

// handleSocket answers one live-preview message.
func (s *Server) handleSocket(msg []byte) []byte {
	var req PreviewRequest
	reply := func(typ string, payload any) []byte {
		b, err := json.Marshal(Message{Type: typ, Payload: payload})
		if err != nil {
			s.logger().Warn("encode socket reply", zap.Error(err))
			return nil
		}
		return b
	}
	if err := json.Unmarshal(msg, &req); err != nil {
		return reply("error", errorResp{Error: errBadJSON.Error()})
	}
	lang := s.Lang
	if req.Lang != "" {
		l, ok := i18n.Parse(string(req.Lang))
		if !ok {
			return reply("error", errorResp{Error: i18n.ErrUnsupportedLanguage.Error()})
		}
		lang = l
	}
	if lang == "" {
		lang = i18n.Default
	}
	p, err := s.preview(req.Card, lang)
	if err != nil {
		return reply("error", errorResp{Error: err.Error()})
	}
	return reply("preview", p)
}
