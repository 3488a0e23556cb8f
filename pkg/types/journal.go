package types

import (
	"database/sql"
	"time"
)

const (
	VISIT_STATUS_NOT_VISITED   = "not-visited"
	VISIT_STATUS_WANT_TO_VISIT = "want-to-visit"
	VISIT_STATUS_VISITED       = "visited"
)

// JournalEntry is one timestamped free-text record about a country.
// A country can have any number of entries. Wire format is camelCase,
// storage is snake_case.
type JournalEntry struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	CountryCode string    `json:"countryCode" db:"country_code"`
	CountryName string    `json:"countryName" db:"country_name"`
	Entry       string    `json:"entry" db:"entry"`
	VisitStatus string    `json:"visitStatus" db:"visit_status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// CountryVisitStatus carries the current country_status row joined in by
	// list/get queries. When set it takes precedence over the entry's own
	// visit_status, which may be stale.
	CountryVisitStatus sql.NullString `json:"-" db:"country_visit_status"`
}

// CountryStatus is the authoritative current visit status of a country for
// one user. At most one row per (user_id, country_code).
type CountryStatus struct {
	UserID      int64     `json:"-" db:"user_id"`
	CountryCode string    `json:"countryCode" db:"country_code"`
	CountryName string    `json:"countryName" db:"country_name"`
	VisitStatus string    `json:"visitStatus" db:"visit_status"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
