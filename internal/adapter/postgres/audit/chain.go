package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/domain"
)

// GenesisHash is the previous-hash value of the first entry in the log.
var GenesisHash = strings.Repeat("0", sha256.Size*2)

// canonicalEntry is the hashed form of an audit entry. The database id is
// not part of it; entries are linked through PrevHash instead.
type canonicalEntry struct {
	ItemCode      string                    `json:"itemCode"`
	Action        string                    `json:"action"`
	Username      string                    `json:"username"`
	UserRole      string                    `json:"userRole"`
	Timestamp     string                    `json:"timestamp"`
	OldValues     *domain.ContainerSnapshot `json:"oldValues"`
	NewValues     *domain.ContainerSnapshot `json:"newValues"`
	ChangedFields []string                  `json:"changedFields"`
	ClientIP      *string                   `json:"clientIp"`
	ClientAgent   *string                   `json:"clientAgent"`
	Notes         *string                   `json:"notes"`
}

// ComputeHash returns hex(sha256(prev || canonical JSON of e)).
// e.Timestamp must already be truncated to the precision the store keeps.
func ComputeHash(prev string, e domain.AuditEntry) (string, error) {
	changed := e.ChangedFields
	if changed == nil {
		changed = []string{}
	}

	payload, err := json.Marshal(canonicalEntry{
		ItemCode:      e.ItemCode,
		Action:        string(e.Action),
		Username:      e.Username,
		UserRole:      e.UserRole.String(),
		Timestamp:     e.Timestamp.UTC().Format(time.RFC3339Nano),
		OldValues:     e.OldValues,
		NewValues:     e.NewValues,
		ChangedFields: changed,
		ClientIP:      e.ClientIP,
		ClientAgent:   e.ClientAgent,
		Notes:         e.Notes,
	})
	if err != nil {
		return "", fmt.Errorf("marshal audit entry: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(prev))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil)), nil
}
