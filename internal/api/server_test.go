package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xtding233/cardforge/internal/audit"
	"github.com/xtding233/cardforge/internal/catalog"
	"github.com/xtding233/cardforge/internal/describe"
	"github.com/xtding233/cardforge/internal/i18n"
	"github.com/xtding233/cardforge/internal/tribes"
)

const damageSpell = `{
	"type": "spell",
	"rarity": "common",
	"abilities": [{"trigger": "on_play", "effect": "deal_damage", "value": 3, "target": "target_any"}]
}`

type fixture struct {
	srv  *Server
	http *httptest.Server
	logs *observer.ObservedLogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)

	reg, err := tribes.New(tribes.Midgard, "", logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(logger)
	go hub.Run(ctx)

	srv := &Server{
		Catalog: catalog.Default,
		Tribes:  reg,
		Hub:     hub,
		Lang:    i18n.EN,
		Logger:  logger,
	}
	stop := srv.BroadcastTribes()
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(func() {
		ts.Close()
		stop()
		cancel()
	})
	return &fixture{srv: srv, http: ts, logs: logs}
}

func (f *fixture) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, f.http.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func decodeBody[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))
	return v
}

func TestCatalogListing(t *testing.T) {
	f := newFixture(t)

	res := f.do(t, http.MethodGet, "/api/catalog?lang=es", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	l := decodeBody[catalog.Listing](t, res)
	assert.Equal(t, i18n.ES, l.Language)
	assert.Equal(t, "builtin", l.Version)
	require.NotEmpty(t, l.Triggers)
	assert.Equal(t, "Grito de Batalla", l.Triggers[0].Name)

	res = f.do(t, http.MethodGet, "/api/catalog?lang=fr", "")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, 1, f.logs.FilterMessage("request failed").Len())
}

func TestCalculate(t *testing.T) {
	f := newFixture(t)

	res := f.do(t, http.MethodPost, "/api/calculate", damageSpell)
	require.Equal(t, http.StatusOK, res.StatusCode)
	p := decodeBody[describe.Preview](t, res)
	assert.Equal(t, 3, p.Report.ManaCost)
	assert.InDelta(t, 7.52, p.Report.TotalVP, 1e-9)
	assert.Equal(t, "<b>Battlecry:</b> Deal Damage 3 to Target Any.", p.RulesText)
	assert.Equal(t, "neutral", p.Card.Tribe)

	res = f.do(t, http.MethodPost, "/api/calculate?lang=es", damageSpell)
	p = decodeBody[describe.Preview](t, res)
	assert.Equal(t, []string{"<b>Grito de Batalla:</b> Infligir Daño 3 a Cualquier Objetivo."}, p.Abilities)

	res = f.do(t, http.MethodPost, "/api/calculate", `{"type": `)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res = f.do(t, http.MethodPost, "/api/calculate", `{"rarity": "rare", "stats": {"attack": -1, "health": 2}}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	e := decodeBody[errorResp](t, res)
	assert.Contains(t, e.Error, "type is required")
	assert.Contains(t, e.Error, "stats must be >= 0")
}

func TestDescribe(t *testing.T) {
	f := newFixture(t)

	body := `{"trigger": "on_death", "effect": "summon_token", "tokenData": {"name": "Wolf", "attack": 2, "health": 2}, "target": "none"}`
	res := f.do(t, http.MethodPost, "/api/describe", body)
	require.Equal(t, http.StatusOK, res.StatusCode)
	d := decodeBody[DescribeResponse](t, res)
	assert.Equal(t, "<b>Deathrattle:</b> Summon 2/2 Wolf.", d.Text)
	assert.InDelta(t, (1.0+2.0*4)*0.8, d.VP, 1e-9)
}

func TestImport(t *testing.T) {
	f := newFixture(t)

	export := `{"name": "Shieldbearer", "type": "minion", "rarity": "common",
		"stats": {"attack": 3, "health": 4}, "keywords": {"taunt": true, "charge": false},
		"image": "data:image/png;base64,AAAA", "abilities": []}`
	res := f.do(t, http.MethodPost, "/api/import", export)
	require.Equal(t, http.StatusOK, res.StatusCode)
	p := decodeBody[describe.Preview](t, res)
	assert.Equal(t, map[string]int{"taunt": 1}, p.Card.Keywords)
	assert.Equal(t, 4, p.Report.ManaCost)

	res = f.do(t, http.MethodPost, "/api/import", `[1, 2]`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestTribeLifecycle(t *testing.T) {
	f := newFixture(t)

	res := f.do(t, http.MethodPost, "/api/tribes", `{"name": "Frost Giants", "color": "#00bcd4"}`)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	created := decodeBody[catalog.Tribe](t, res)
	assert.True(t, strings.HasPrefix(string(created.ID), "frost_giants_"))

	res = f.do(t, http.MethodPatch, "/api/tribes/"+string(created.ID), `{"name": "Ice Giants"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Ice Giants", decodeBody[catalog.Tribe](t, res).Name[i18n.EN])

	// rendering reads the live table
	ability := `{"trigger": "on_play", "effect": "discover_tribe", "effectTribe": "` + string(created.ID) + `", "target": "none"}`
	res = f.do(t, http.MethodPost, "/api/describe", ability)
	assert.Equal(t, "<b>Battlecry:</b> Discover a Ice Giants.", decodeBody[DescribeResponse](t, res).Text)

	res = f.do(t, http.MethodDelete, "/api/tribes/"+string(created.ID), "")
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	res = f.do(t, http.MethodPost, "/api/describe", ability)
	assert.Equal(t, "<b>Battlecry:</b> Discover a Tribe.", decodeBody[DescribeResponse](t, res).Text)

	res = f.do(t, http.MethodDelete, "/api/tribes/neutral", "")
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	res = f.do(t, http.MethodDelete, "/api/tribes/nope", "")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	res = f.do(t, http.MethodPost, "/api/tribes", `{"name": "  "}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	res = f.do(t, http.MethodPatch, "/api/tribes/tribe_1", `{"color": "red"}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestTribeReset(t *testing.T) {
	f := newFixture(t)

	res := f.do(t, http.MethodPost, "/api/tribes/reset?preset=tabletop", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	list := decodeBody[[]catalog.Tribe](t, res)
	require.Len(t, list, 6)
	assert.Equal(t, catalog.TribeNeutral, list[0].ID)
	assert.Equal(t, tribes.Tabletop, f.srv.Tribes.Preset())

	res = f.do(t, http.MethodGet, "/api/tribes", "")
	assert.Len(t, decodeBody[[]catalog.Tribe](t, res), 6)

	res = f.do(t, http.MethodPost, "/api/tribes/reset?preset=atlantis", "")
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestAudit(t *testing.T) {
	f := newFixture(t)

	res := f.do(t, http.MethodGet, "/api/audit?trials=200&seed=9&type=minion", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	st := decodeBody[audit.Stats](t, res)
	assert.Equal(t, 200, st.Trials)

	again := decodeBody[audit.Stats](t, f.do(t, http.MethodGet, "/api/audit?trials=200&seed=9&type=minion", ""))
	assert.Equal(t, st, again)

	for _, q := range []string{"type=hero", "trials=abc", "seed=-4", "trials=1000000"} {
		res = f.do(t, http.MethodGet, "/api/audit?"+q, "")
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, q)
	}
}

func TestSchema(t *testing.T) {
	f := newFixture(t)

	res := f.do(t, http.MethodGet, "/api/schema/card", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/schema+json", res.Header.Get("Content-Type"))
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Card Forge card")
}

func TestLivePreviewSocket(t *testing.T) {
	f := newFixture(t)

	url := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	type envelope struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	read := func() envelope {
		var m envelope
		require.NoError(t, conn.ReadJSON(&m))
		return m
	}

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"lang": "es", "card": `+damageSpell+`}`)))
	m := read()
	require.Equal(t, "preview", m.Type)
	var p describe.Preview
	require.NoError(t, json.Unmarshal(m.Payload, &p))
	assert.Equal(t, 3, p.Report.ManaCost)
	assert.Equal(t, i18n.ES, p.Language)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"card": {"type": ""}}`)))
	assert.Equal(t, "error", read().Type)

	// the socket is registered once it has answered, so the broadcast reaches it
	res := f.do(t, http.MethodDelete, "/api/tribes/tribe_6", "")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	m = read()
	require.Equal(t, "tribes_changed", m.Type)
	var list []catalog.Tribe
	require.NoError(t, json.Unmarshal(m.Payload, &list))
	assert.Len(t, list, 6)
}
