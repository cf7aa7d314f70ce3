// Package rpc exposes the cost and description engines as the gRPC service
// cardforge.v1.Balance. Messages are google.protobuf.Struct values holding
// the same JSON documents the HTTP API accepts, so no generated code is
// needed on either side.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/xtding233/cardforge/internal/balance"
	"github.com/xtding233/cardforge/internal/card"
	"github.com/xtding233/cardforge/internal/catalog"
	"github.com/xtding233/cardforge/internal/describe"
	"github.com/xtding233/cardforge/internal/i18n"
)

const ServiceName = "cardforge.v1.Balance"

// BalanceServer is the server API for cardforge.v1.Balance.
type BalanceServer interface {
	// Calculate takes {"card": CardDoc, "lang": "en"} and returns the preview.
	Calculate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// Describe takes {"ability": AbilityDoc, "lang": "en"} and returns
	// {"language", "text", "vp"}.
	Describe(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// Service implements BalanceServer over the live catalog and tribe table.
type Service struct {
	Catalog func() *catalog.Catalog
	Tribes  catalog.TribeSource
	Lang    i18n.Lang
}

var _ BalanceServer = (*Service)(nil)

type calculateRequest struct {
	Card card.CardDoc `json:"card"`
	Lang string       `json:"lang"`
}

type describeRequest struct {
	Ability card.AbilityDoc `json:"ability"`
	Lang    string          `json:"lang"`
}

type describeResponse struct {
	Language i18n.Lang `json:"language"`
	Text     string    `json:"text"`
	VP       float64   `json:"vp"`
}

func (s *Service) lang(code string) (i18n.Lang, error) {
	if code == "" {
		if s.Lang != "" {
			return s.Lang, nil
		}
		return i18n.Default, nil
	}
	l, ok := i18n.Parse(code)
	if !ok {
		return "", status.Error(codes.InvalidArgument, i18n.ErrUnsupportedLanguage.Error())
	}
	return l, nil
}

func (s *Service) Calculate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req calculateRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, err
	}
	lang, err := s.lang(req.Lang)
	if err != nil {
		return nil, err
	}
	cat := s.Catalog()
	c, err := req.Card.Build(cat)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return toStruct(describe.Render(c, cat, s.Tribes, lang))
}

func (s *Service) Describe(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req describeRequest
	if err := fromStruct(in, &req); err != nil {
		return nil, err
	}
	lang, err := s.lang(req.Lang)
	if err != nil {
		return nil, err
	}
	if req.Ability.Trigger == "" || req.Ability.Effect == "" {
		return nil, status.Error(codes.InvalidArgument, "ability.trigger and ability.effect are required")
	}
	cat := s.Catalog()
	a := req.Ability.Build(cat)
	return toStruct(describeResponse{
		Language: lang,
		Text:     describe.Ability(a, cat, s.Tribes, lang),
		VP:       balance.AbilityVP(a, card.Card{Type: catalog.Minion}, cat),
	})
}

// fromStruct decodes a Struct into a JSON-tagged Go value.
func fromStruct(in *structpb.Struct, v any) error {
	b, err := protojson.Marshal(in)
	if err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if err := json.Unmarshal(b, v); err != nil {
		return status.Error(codes.InvalidArgument, fmt.Sprintf("decode request: %v", err))
	}
	return nil
}

func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// UnaryLogger logs failed calls at Warn.
func UnaryLogger(logger *zap.Logger) grpc.UnaryServerInterceptor {
	logger = logger.Named("rpc")
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("call failed",
				zap.String("method", info.FullMethod),
				zap.String("code", status.Code(err).String()),
				zap.Error(err),
			)
		}
		return resp, err
	}
}
