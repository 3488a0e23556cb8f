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
		provider.stores.CountryStatusStore = NewCountryStatusStore(provider)
	})
}

type CountryStatusStore struct {
	CommonFields
}

func NewCountryStatusStore(provider SqlProviderAchieve) *CountryStatusStore {
	repo := &CountryStatusStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_COUNTRY_STATUS)
	repo.SetAllColumns("user_id", "country_code", "country_name", "visit_status", "updated_at")
	return repo
}

// Upsert keeps the single-row-per-(user, country) invariant: the primary key
// conflict turns a second insert into an overwrite.
func (s *CountryStatusStore) Upsert(ctx context.Context, data types.CountryStatus) error {
	if data.UpdatedAt.IsZero() {
		data.UpdatedAt = time.Now()
	}
	query := sq.Insert(s.GetTable()).
		Columns("user_id", "country_code", "country_name", "visit_status", "updated_at").
		Values(data.UserID, data.CountryCode, data.CountryName, data.VisitStatus, data.UpdatedAt).
		Suffix("ON CONFLICT (user_id, country_code) DO UPDATE SET country_name = EXCLUDED.country_name, visit_status = EXCLUDED.visit_status, updated_at = EXCLUDED.updated_at")

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

// Get
func (s *CountryStatusStore) Get(ctx context.Context, userID int64, countryCode string) (*types.CountryStatus, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"user_id": userID, "country_code": countryCode})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, errorSqlBuild(err)
	}

	var res types.CountryStatus
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}
