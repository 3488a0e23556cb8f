package types

const (
	TABLE_JOURNAL_ENTRY  = "roam_journal_entries"
	TABLE_COUNTRY_STATUS = "roam_country_status"
	TABLE_USER           = "roam_users"
)
