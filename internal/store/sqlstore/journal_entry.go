package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/roamlog/roam-api/pkg/register"
	"github.com/roamlog/roam-api/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.JournalEntryStore = NewJournalEntryStore(provider)
	})
}

type JournalEntryStore struct {
	CommonFields
}

func NewJournalEntryStore(provider SqlProviderAchieve) *JournalEntryStore {
	repo := &JournalEntryStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_JOURNAL_ENTRY)
	repo.SetAllColumns("id", "user_id", "country_code", "country_name", "entry", "visit_status", "created_at", "updated_at")
	return repo
}

// joinedColumns qualifies every entry column and attaches the current country
// status, which read paths use to override the possibly stale entry status.
var joinedColumns = []string{
	"je.id", "je.user_id", "je.country_code", "je.country_name", "je.entry",
	"je.visit_status", "je.created_at", "je.updated_at",
	"cs.visit_status AS country_visit_status",
}

const statusJoin = types.TABLE_COUNTRY_STATUS + " cs ON cs.user_id = je.user_id AND cs.country_code = je.country_code"

// Create
func (s *JournalEntryStore) Create(ctx context.Context, data types.JournalEntry) error {
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}
	if data.UpdatedAt.IsZero() {
		data.UpdatedAt = data.CreatedAt
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "country_code", "country_name", "entry", "visit_status", "created_at", "updated_at").
		Values(data.ID, data.UserID, data.CountryCode, data.CountryName, data.Entry, data.VisitStatus, data.CreatedAt, data.UpdatedAt)

	queryString, args, err := query.ToSql()
	if err != nil {
		return errorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return err
	}
	return nil
}

// Get fetches one owned entry. Ownership is part of the match.
func (s *JournalEntryStore) Get(ctx context.Context, userID, id int64) (*types.JournalEntry, error) {
	query := sq.Select(joinedColumns...).From(s.GetTable() + " je").
		LeftJoin(statusJoin).
		Where(sq.Eq{"je.id": id, "je.user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, errorSqlBuild(err)
	}

	var res types.JournalEntry
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// List returns all of a user's entries, newest first.
func (s *JournalEntryStore) List(ctx context.Context, userID int64) ([]types.JournalEntry, error) {
	query := sq.Select(joinedColumns...).From(s.GetTable() + " je").
		LeftJoin(statusJoin).
		Where(sq.Eq{"je.user_id": userID}).
		OrderBy("je.created_at DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, errorSqlBuild(err)
	}

	var res []types.JournalEntry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// ListByCountry
func (s *JournalEntryStore) ListByCountry(ctx context.Context, userID int64, countryCode string) ([]types.JournalEntry, error) {
	query := sq.Select(joinedColumns...).From(s.GetTable() + " je").
		LeftJoin(statusJoin).
		Where(sq.Eq{"je.user_id": userID, "je.country_code": countryCode}).
		OrderBy("je.created_at DESC")

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, errorSqlBuild(err)
	}

	var res []types.JournalEntry
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

// Update applies COALESCE semantics: nil fields keep their stored value.
func (s *JournalEntryStore) Update(ctx context.Context, userID, id int64, entry, visitStatus *string) (int64, error) {
	query := sq.Update(s.GetTable()).
		Set("entry", sq.Expr("COALESCE(?, entry)", entry)).
		Set("visit_status", sq.Expr("COALESCE(?, visit_status)", visitStatus)).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id, "user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, errorSqlBuild(err)
	}

	res, err := s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete
func (s *JournalEntryStore) Delete(ctx context.Context, userID, id int64) (int64, error) {
	query := sq.Delete(s.GetTable()).Where(sq.Eq{"id": id, "user_id": userID})

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, errorSqlBuild(err)
	}

	res, err := s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
