package models

import "time"

// Audit actions recorded by the services.
const (
	AuditActionLogin        = "LOGIN"
	AuditActionLogout       = "LOGOUT"
	AuditActionRegister     = "REGISTER"
	AuditActionCheckIn      = "CHECK_IN"
	AuditActionCatchSubmit  = "CATCH_SUBMIT"
	AuditActionCatchApprove = "CATCH_APPROVE"
	AuditActionCatchReject  = "CATCH_REJECT"
)

// AuditLog is an append-only trail entry for auth and catch state changes.
type AuditLog struct {
	ID         string    `json:"id"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	Resource   string    `json:"resource"`
	ResourceID string    `json:"resource_id,omitempty"`
	Details    string    `json:"details,omitempty"`
	IPAddress  string    `json:"-"`
	UserAgent  string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
