package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

type auditService interface {
	QueryAuditLogs(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
	RecentActivity(ctx context.Context, count int) ([]domain.AuditEntry, error)
	VerifyAuditChain(ctx context.Context) (domain.ChainReport, error)
}

// AuditHandler serves the audit log endpoints.
type AuditHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

// Query handles GET /api/audit?username=&itemCode=&action=&start=&end=&limit=.
// Dates are RFC 3339 timestamps or YYYY-MM-DD; a bare end date includes
// the whole day.
func (h *AuditHandler) Query(w http.ResponseWriter, r *http.Request) {
	f, err := parseAuditFilter(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}

	entries, err := h.svc.QueryAuditLogs(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, toAuditResponses(entries))
}

// Recent handles GET /api/audit/recent?count=.
func (h *AuditHandler) Recent(w http.ResponseWriter, r *http.Request) {
	count, err := parseOptionalInt(r.URL.Query(), "count")
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}

	entries, err := h.svc.RecentActivity(r.Context(), count)
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, toAuditResponses(entries))
}

// Verify handles GET /api/audit/verify.
func (h *AuditHandler) Verify(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.VerifyAuditChain(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, chainReportResponse{
		Valid:    report.Valid,
		Checked:  report.Checked,
		BrokenAt: report.BrokenAt,
	})
}

func parseAuditFilter(q url.Values) (domain.AuditFilter, error) {
	f := domain.AuditFilter{
		Username: q.Get("username"),
		ItemCode: q.Get("itemCode"),
	}

	if v := strings.TrimSpace(q.Get("action")); v != "" {
		action := domain.AuditAction(strings.ToUpper(v))
		f.Action = &action
	}

	var err error
	if f.Start, err = parseDate(q.Get("start"), "startDate", false); err != nil {
		return domain.AuditFilter{}, err
	}
	if f.End, err = parseDate(q.Get("end"), "endDate", true); err != nil {
		return domain.AuditFilter{}, err
	}
	if f.Limit, err = parseOptionalInt(q, "limit"); err != nil {
		return domain.AuditFilter{}, err
	}
	return f, nil
}

// parseDate accepts RFC 3339 or a calendar date. With endOfDay a calendar
// date is extended to its last instant.
func parseDate(v, field string, endOfDay bool) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Microsecond)
	}
	return &t, nil
}

func parseOptionalInt(q url.Values, key string) (int, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(key, "must be an integer")
	}
	return n, nil
}
