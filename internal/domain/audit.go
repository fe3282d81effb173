package domain

import "time"

// Column limits of the audit log. Client metadata and notes longer than
// these are truncated when an entry is built.
const (
	MaxClientIPLength    = 45
	MaxClientAgentLength = 500
	MaxNotesLength       = 1000
)

// AuditEntry is one immutable record in the audit log.
// OldValues is nil for CREATE; NewValues is nil for DELETE and VIEW.
// ChangedFields is only populated for UPDATE.
type AuditEntry struct {
	ID            int64
	ItemCode      string
	Action        AuditAction
	Username      string
	UserRole      Role
	Timestamp     time.Time
	OldValues     *ContainerSnapshot
	NewValues     *ContainerSnapshot
	ChangedFields []string
	ClientIP      *string
	ClientAgent   *string
	Notes         *string
	PrevHash      string
	Hash          string
}

// Actor identifies who performed an audited action and from where.
type Actor struct {
	Username    string
	Role        Role
	ClientIP    string
	ClientAgent string
}

// AuditFilter narrows an audit log query. Zero values mean "no filter".
// Username and ItemCode match substrings ignoring case; Start and End are
// inclusive.
type AuditFilter struct {
	Username string
	ItemCode string
	Action   *AuditAction
	Start    *time.Time
	End      *time.Time
	Limit    int
}

// ChainReport is the outcome of verifying the audit hash chain.
type ChainReport struct {
	Checked  int
	Valid    bool
	BrokenAt *int64
}
