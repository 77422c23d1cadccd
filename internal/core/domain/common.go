package domain

import "time"

// AuditFields holds the store-managed bookkeeping timestamps shared by all
// persisted entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
