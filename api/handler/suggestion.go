package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/junohq/backend/api/transport"
	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/pkg/httpcontext"
	suggestUC "github.com/junohq/backend/usecase/suggest"
)

type SuggestionHandler struct {
	baseHandler
	uc *suggestUC.UseCase
}

func NewSuggestionHandler(uc *suggestUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Generate suggestions from signals
// @Tags suggestions
// @Router /api/v1/suggestions/generate [post]
func (h *SuggestionHandler) Generate(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.SignalsRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	suggestions, err := h.uc.Generate(stdCtx, userID, req.Signals)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, suggestions)
}

// @Summary List pending suggestions
// @Tags suggestions
// @Router /api/v1/suggestions [get]
func (h *SuggestionHandler) Pending(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondSuccess(ctx, http.StatusOK, h.uc.Pending(stdCtx, userID))
}

// @Summary Accept a suggestion
// @Tags suggestions
// @Router /api/v1/suggestions/{id}/accept [post]
func (h *SuggestionHandler) Accept(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing suggestion id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.Accept(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, task)
}

// @Summary Snooze a suggestion
// @Tags suggestions
// @Router /api/v1/suggestions/{id}/snooze [post]
func (h *SuggestionHandler) Snooze(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing suggestion id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Snooze(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Delegate a suggestion to the agent
// @Tags suggestions
// @Router /api/v1/suggestions/{id}/delegate [post]
func (h *SuggestionHandler) Delegate(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing suggestion id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	delegation, err := h.uc.Delegate(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, delegation)
}
