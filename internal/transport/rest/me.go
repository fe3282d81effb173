package rest

import (
	"context"
	"net/http"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/pkg/ctxutil"
)

type userInfoService interface {
	UserInfo(ctx context.Context, username string) domain.UserDisplayInfo
}

// MeHandler reports the signed-in user's role and capabilities so a UI can
// hide actions the user may not take.
type MeHandler struct {
	svc userInfoService
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(svc userInfoService) *MeHandler {
	return &MeHandler{svc: svc}
}

// Get handles GET /api/me.
func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	username, ok := ctxutil.UsernameFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", domain.UserMessage(domain.ErrUnauthorized))
		return
	}

	info := h.svc.UserInfo(r.Context(), username)
	writeJSON(w, http.StatusOK, meResponse{
		Username:    info.Username,
		DisplayName: info.DisplayName,
		Email:       info.Email,
		Role:        info.Role.String(),
		CanView:     info.CanView,
		CanEdit:     info.CanEdit,
		CanDelete:   info.CanDelete,
	})
}
