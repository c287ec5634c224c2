package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/junohq/backend/api/transport"
	"github.com/junohq/backend/domain"
	"github.com/junohq/backend/pkg/httpcontext"
	clusterUC "github.com/junohq/backend/usecase/cluster"
)

type ClusterHandler struct {
	baseHandler
	uc *clusterUC.UseCase
}

func NewClusterHandler(uc *clusterUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ClusterHandler {
	return &ClusterHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Create cluster
// @Tags clusters
// @Router /api/v1/clusters [post]
func (h *ClusterHandler) CreateCluster(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ClusterRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}
	if req.Name == "" || req.LastName == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "name and last_name are required", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	cluster, err := h.uc.CreateCluster(stdCtx, req.Name, req.LastName)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, cluster)
}

// @Summary Join cluster
// @Tags clusters
// @Router /api/v1/clusters/{id}/join [post]
func (h *ClusterHandler) Join(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing cluster id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Join(stdCtx, id, userID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Share a task with a cluster
// @Tags clusters
// @Router /api/v1/clusters/{id}/tasks [post]
func (h *ClusterHandler) ShareTask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing cluster id", nil))
		return
	}

	var req transport.ShareTaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.TaskID == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "task_id is required", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.ShareTask(stdCtx, id, req.TaskID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary View a cluster through the caller's privacy lens
// @Tags clusters
// @Router /api/v1/clusters/{id} [get]
func (h *ClusterHandler) View(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing cluster id", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	view, err := h.uc.View(stdCtx, id, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, view)
}
