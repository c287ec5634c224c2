package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/junohq/backend/api/transport"
	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/pkg/httpcontext"
	calendarUC "github.com/junohq/backend/usecase/calendar"
)

type CalendarHandler struct {
	baseHandler
	uc *calendarUC.UseCase
}

func NewCalendarHandler(uc *calendarUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Add calendar event
// @Tags calendar
// @Router /api/v1/events [post]
func (h *CalendarHandler) AddEvent(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.EventRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "starts_at must be RFC3339", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	event, err := h.uc.AddEvent(stdCtx, &domain.CalendarEvent{
		UserID:    userID,
		Title:     req.Title,
		StartsAt:  startsAt,
		Type:      domain.EventType(req.Type),
		Attendees: req.Attendees,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, event)
}

// @Summary List calendar events
// @Tags calendar
// @Router /api/v1/events [get]
func (h *CalendarHandler) ListEvents(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	events, err := h.uc.ListEvents(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, events)
}

// @Summary Remove calendar event
// @Tags calendar
// @Router /api/v1/events/{id} [delete]
func (h *CalendarHandler) RemoveEvent(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing event id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.RemoveEvent(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
