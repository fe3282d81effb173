package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// containerRequest is the body of POST and PUT /api/containers. Decimal
// fields accept JSON numbers or numeric strings.
type containerRequest struct {
	ItemCode        string           `json:"itemCode"`
	PackingCode     string           `json:"packingCode"`
	PrefixCode      string           `json:"prefixCode"`
	ContainerNumber string           `json:"containerNumber,omitempty"`
	AlternateID     string           `json:"alternateId,omitempty"`
	OutsideLength   *decimal.Decimal `json:"outsideLength,omitempty"`
	OutsideWidth    *decimal.Decimal `json:"outsideWidth,omitempty"`
	OutsideHeight   *decimal.Decimal `json:"outsideHeight,omitempty"`
	CollapsedHeight *decimal.Decimal `json:"collapsedHeight,omitempty"`
	Weight          *decimal.Decimal `json:"weight,omitempty"`
	PackQuantity    *int             `json:"packQuantity,omitempty"`
	Version         int              `json:"version,omitempty"`
}

func (req containerRequest) toInput() domain.ContainerInput {
	return domain.ContainerInput{
		ItemCode:        req.ItemCode,
		PackingCode:     req.PackingCode,
		PrefixCode:      req.PrefixCode,
		ContainerNumber: req.ContainerNumber,
		AlternateID:     req.AlternateID,
		OutsideLength:   req.OutsideLength,
		OutsideWidth:    req.OutsideWidth,
		OutsideHeight:   req.OutsideHeight,
		CollapsedHeight: req.CollapsedHeight,
		Weight:          req.Weight,
		PackQuantity:    req.PackQuantity,
		Version:         req.Version,
	}
}

type containerResponse struct {
	ItemCode        string           `json:"itemCode"`
	PackingCode     string           `json:"packingCode"`
	PrefixCode      string           `json:"prefixCode"`
	ContainerNumber *string          `json:"containerNumber"`
	AlternateID     *string          `json:"alternateId"`
	OutsideLength   *decimal.Decimal `json:"outsideLength"`
	OutsideWidth    *decimal.Decimal `json:"outsideWidth"`
	OutsideHeight   *decimal.Decimal `json:"outsideHeight"`
	CollapsedHeight *decimal.Decimal `json:"collapsedHeight"`
	Weight          *decimal.Decimal `json:"weight"`
	PackQuantity    *int             `json:"packQuantity"`
	Version         int              `json:"version"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func toContainerResponse(c *domain.Container) containerResponse {
	return containerResponse{
		ItemCode:        c.ItemCode,
		PackingCode:     c.PackingCode,
		PrefixCode:      c.PrefixCode,
		ContainerNumber: c.ContainerNumber,
		AlternateID:     c.AlternateID,
		OutsideLength:   c.OutsideLength,
		OutsideWidth:    c.OutsideWidth,
		OutsideHeight:   c.OutsideHeight,
		CollapsedHeight: c.CollapsedHeight,
		Weight:          c.Weight,
		PackQuantity:    c.PackQuantity,
		Version:         c.Version,
		UpdatedAt:       c.UpdatedAt,
	}
}

type auditEntryResponse struct {
	ID            int64                     `json:"id"`
	ItemCode      string                    `json:"itemCode"`
	Action        string                    `json:"action"`
	Username      string                    `json:"username"`
	UserRole      string                    `json:"userRole"`
	Timestamp     time.Time                 `json:"timestamp"`
	OldValues     *domain.ContainerSnapshot `json:"oldValues"`
	NewValues     *domain.ContainerSnapshot `json:"newValues"`
	ChangedFields []string                  `json:"changedFields"`
	ClientIP      *string                   `json:"clientIp"`
	ClientAgent   *string                   `json:"clientAgent"`
	Notes         *string                   `json:"notes"`
	Hash          string                    `json:"hash"`
}

func toAuditResponses(entries []domain.AuditEntry) []auditEntryResponse {
	out := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, auditEntryResponse{
			ID:            e.ID,
			ItemCode:      e.ItemCode,
			Action:        e.Action.String(),
			Username:      e.Username,
			UserRole:      e.UserRole.String(),
			Timestamp:     e.Timestamp,
			OldValues:     e.OldValues,
			NewValues:     e.NewValues,
			ChangedFields: e.ChangedFields,
			ClientIP:      e.ClientIP,
			ClientAgent:   e.ClientAgent,
			Notes:         e.Notes,
			Hash:          e.Hash,
		})
	}
	return out
}

type chainReportResponse struct {
	Valid    bool   `json:"valid"`
	Checked  int    `json:"checked"`
	BrokenAt *int64 `json:"brokenAt,omitempty"`
}

type meResponse struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role"`
	CanView     bool   `json:"canView"`
	CanEdit     bool   `json:"canEdit"`
	CanDelete   bool   `json:"canDelete"`
}
