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
	storeUC "github.com/junohq/backend/usecase/store"
)

type TaskHandler struct {
	baseHandler
	uc *storeUC.UseCase
}

func NewTaskHandler(uc *storeUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tasks on a lane
// @Tags tasks
// @Router /api/v1/lanes/{lane}/tasks [get]
func (h *TaskHandler) ListLane(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	lane, _ := ctx.UserValue("lane").(string)
	switch domain.Lane(lane) {
	case domain.LaneGeneral, domain.LaneSocial, domain.LaneMarketplace:
	default:
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "unknown lane", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListLane(stdCtx, domain.Lane(lane), userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tasks)
}

// @Summary Get task
// @Tags tasks
// @Router /api/v1/tasks/{id} [get]
func (h *TaskHandler) GetTask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.GetTask(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	task, ok := h.parseTask(ctx, userID)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateTask(stdCtx, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update task
// @Tags tasks
// @Router /api/v1/tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	var req transport.TaskPatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	patch, ok := h.buildPatch(ctx, req)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateTask(stdCtx, id, patch)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Toggle task completion
// @Tags tasks
// @Router /api/v1/tasks/{id}/toggle [post]
func (h *TaskHandler) ToggleCompletion(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.ToggleCompletion(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Set task completion state
// @Tags tasks
// @Router /api/v1/tasks/{id}/completed [put]
func (h *TaskHandler) SetCompleted(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	var req struct {
		Completed bool `json:"completed"`
	}
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.SetCompleted(stdCtx, id, req.Completed)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing task id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTask(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *TaskHandler) parseTask(ctx *fasthttp.RequestCtx, userID string) (*domain.Task, bool) {
	var req transport.TaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}

	due, ok := h.parseDue(ctx, req.DueDate)
	if !ok {
		return nil, false
	}

	task := &domain.Task{
		ID:            req.ID,
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		Priority:      domain.Priority(req.Priority),
		DueDate:       due,
		Category:      domain.Category(req.Category),
		Tags:          req.Tags,
		EstimatedTime: req.EstimatedTime,
		Platform:      domain.SocialPlatform(req.Platform),
		Post:          req.Post,
		Listing:       req.Listing,
	}
	return task, true
}

func (h *TaskHandler) buildPatch(ctx *fasthttp.RequestCtx, req transport.TaskPatchRequest) (storeUC.TaskPatch, bool) {
	patch := storeUC.TaskPatch{
		Title:         req.Title,
		Description:   req.Description,
		Tags:          req.Tags,
		EstimatedTime: req.EstimatedTime,
		Post:          req.Post,
		ClearPost:     req.ClearPost,
		Listing:       req.Listing,
		ClearListing:  req.ClearListing,
	}
	if req.Priority != nil {
		priority := domain.Priority(*req.Priority)
		patch.Priority = &priority
	}
	if req.Category != nil {
		category := domain.Category(*req.Category)
		patch.Category = &category
	}
	if req.Platform != nil {
		platform := domain.SocialPlatform(*req.Platform)
		patch.Platform = &platform
	}
	if req.DueDate != nil {
		due, ok := h.parseDue(ctx, *req.DueDate)
		if !ok {
			return storeUC.TaskPatch{}, false
		}
		patch.DueDate = due
	}
	return patch, true
}

func (h *TaskHandler) parseDue(ctx *fasthttp.RequestCtx, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "due_date must be RFC3339", nil))
		return nil, false
	}
	return &parsed, true
}
