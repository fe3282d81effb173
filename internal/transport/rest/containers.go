package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// containerService is the slice of catalog.Service used by ContainerHandler.
type containerService interface {
	CreateContainer(ctx context.Context, input domain.ContainerInput) (*domain.Container, error)
	UpdateContainer(ctx context.Context, originalKey string, input domain.ContainerInput) (*domain.Container, error)
	DeleteContainer(ctx context.Context, key string) error
	ViewContainer(ctx context.Context, key string) (*domain.Container, error)
	ListContainers(ctx context.Context) ([]domain.Container, error)
	GetHistory(ctx context.Context, key string) ([]domain.AuditEntry, error)
}

// ContainerHandler serves the container catalog endpoints.
type ContainerHandler struct {
	svc containerService
	log *slog.Logger
}

// NewContainerHandler creates a ContainerHandler.
func NewContainerHandler(svc containerService, logger *slog.Logger) *ContainerHandler {
	return &ContainerHandler{svc: svc, log: logger.With("handler", "containers")}
}

// List handles GET /api/containers.
func (h *ContainerHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListContainers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}

	out := make([]containerResponse, 0, len(items))
	for i := range items {
		out = append(out, toContainerResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/containers/{key}. The read is recorded as a VIEW
// when view auditing is on.
func (h *ContainerHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.ViewContainer(r.Context(), r.PathValue("key"))
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, toContainerResponse(c))
}

// Create handles POST /api/containers.
func (h *ContainerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req containerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.svc.CreateContainer(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err, req)
		return
	}

	w.Header().Set("Location", "/api/containers/"+url.PathEscape(c.ItemCode))
	writeJSON(w, http.StatusCreated, toContainerResponse(c))
}

// Update handles PUT /api/containers/{key}. A different itemCode in the
// body renames the entry.
func (h *ContainerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req containerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.svc.UpdateContainer(r.Context(), r.PathValue("key"), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err, req)
		return
	}
	writeJSON(w, http.StatusOK, toContainerResponse(c))
}

// Delete handles DELETE /api/containers/{key}.
func (h *ContainerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteContainer(r.Context(), r.PathValue("key")); err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/containers/{key}/history.
func (h *ContainerHandler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.GetHistory(r.Context(), r.PathValue("key"))
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, toAuditResponses(entries))
}
