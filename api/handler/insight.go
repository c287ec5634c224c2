package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/junohq/backend/api/transport"
	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/pkg/httpcontext"
	insightUC "github.com/junohq/backend/usecase/insight"
)

type InsightHandler struct {
	baseHandler
	uc *insightUC.UseCase
}

func NewInsightHandler(uc *insightUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *InsightHandler {
	return &InsightHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Compose assistant wrapper text
// @Tags insights
// @Router /api/v1/insights/compose [post]
func (h *InsightHandler) Compose(ctx *fasthttp.RequestCtx) {
	var req transport.ComposeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	kind := insightUC.Kind(req.Kind)
	switch kind {
	case insightUC.KindGreeting, insightUC.KindInsightIntro, insightUC.KindChatReply:
	default:
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "unknown compose kind", nil))
		return
	}

	personality := domain.NormalizePersonality(domain.AgentPersonality(req.Personality))
	text := h.uc.Compose(kind, personality, insightUC.Context{
		FirstName: req.FirstName,
		Hour:      req.Hour,
	})
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"text": text})
}

// @Summary Build insight cards from signals
// @Tags insights
// @Router /api/v1/insights/build [post]
func (h *InsightHandler) BuildInsights(ctx *fasthttp.RequestCtx) {
	var req transport.SignalsRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	h.respondSuccess(ctx, http.StatusOK, h.uc.BuildInsights(req.Signals))
}
