package rpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/cardforge/internal/catalog"
	"github.com/xtding233/cardforge/internal/i18n"
	"github.com/xtding233/cardforge/internal/tribes"
)

func dial(t *testing.T) (*Client, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.WarnLevel)

	reg, err := tribes.New(tribes.Midgard, "", nil)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.UnaryInterceptor(UnaryLogger(zap.New(core))))
	Register(s, &Service{Catalog: catalog.Default, Tribes: reg, Lang: i18n.EN})
	go s.Serve(lis)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
		s.Stop()
	})
	return NewClient(conn), logs
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestCalculate(t *testing.T) {
	c, _ := dial(t)

	req := mustStruct(t, map[string]any{
		"lang": "es",
		"card": map[string]any{
			"type":   "minion",
			"rarity": "common",
			"stats":  map[string]any{"attack": 3, "health": 4},
			"abilities": []any{
				map[string]any{"trigger": "on_play", "condition": "holding_tribe", "conditionParam": "tribe_1",
					"effect": "gain_armor", "value": 2, "target": "none"},
			},
		},
	})
	out, err := c.Calculate(context.Background(), req)
	require.NoError(t, err)

	report := out.Fields["report"].GetStructValue()
	// 1 + 7 + (0.5 + 2) * 0.8 = 10
	assert.Equal(t, 5.0, report.Fields["manaCost"].GetNumberValue())
	assert.Equal(t, "es", out.Fields["language"].GetStringValue())
	assert.Equal(t,
		"<b>Grito de Batalla:</b> <i>(Si tienes un Aesir en mano)</i> Ganar Armadura 2.",
		out.Fields["rulesText"].GetStringValue())
}

func TestDescribe(t *testing.T) {
	c, _ := dial(t)

	out, err := c.Describe(context.Background(), mustStruct(t, map[string]any{
		"ability": map[string]any{"trigger": "passive", "flavorName": "Pack Leader",
			"effect": "give_stats", "value": 1, "target": "all_friendly"},
	}))
	require.NoError(t, err)
	assert.Equal(t, "<b>Pack Leader</b>: Give +1/+X to All Friendly.", out.Fields["text"].GetStringValue())
	assert.InDelta(t, 2.0*2.2, out.Fields["vp"].GetNumberValue(), 1e-9)
	assert.Equal(t, "en", out.Fields["language"].GetStringValue())
}

func TestInvalidArgument(t *testing.T) {
	c, logs := dial(t)
	ctx := context.Background()

	_, err := c.Calculate(ctx, mustStruct(t, map[string]any{"card": map[string]any{"rarity": "rare"}}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "type is required")

	_, err = c.Calculate(ctx, mustStruct(t, map[string]any{"lang": "fr", "card": map[string]any{"type": "spell"}}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Calculate(ctx, mustStruct(t, map[string]any{"card": "not a card"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Describe(ctx, mustStruct(t, map[string]any{"ability": map[string]any{"trigger": "on_play"}}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	assert.Equal(t, 4, logs.FilterMessage("call failed").Len())
}
