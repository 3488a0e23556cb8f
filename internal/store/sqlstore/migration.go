package sqlstore

import "context"

var createTableStatements = []string{
	`CREATE TABLE IF NOT EXISTS roam_journal_entries (
		id BIGINT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		country_code TEXT NOT NULL,
		country_name TEXT NOT NULL,
		entry TEXT NOT NULL DEFAULT '',
		visit_status TEXT NOT NULL DEFAULT 'not-visited',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_roam_journal_entries_user_country
		ON roam_journal_entries (user_id, country_code)`,
	`CREATE TABLE IF NOT EXISTS roam_country_status (
		user_id BIGINT NOT NULL,
		country_code TEXT NOT NULL,
		country_name TEXT NOT NULL,
		visit_status TEXT NOT NULL DEFAULT 'not-visited',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, country_code)
	)`,
	`CREATE TABLE IF NOT EXISTS roam_users (
		id BIGINT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		salt TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Install creates missing tables. Safe to run on every start.
func (p *Provider) Install() error {
	ctx := context.Background()
	for _, stmt := range createTableStatements {
		if _, err := p.GetMaster(ctx).Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
