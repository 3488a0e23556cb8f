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
		provider.stores.UserStore = NewUserStore(provider)
	})
}

type UserStore struct {
	CommonFields
}

func NewUserStore(provider SqlProviderAchieve) *UserStore {
	repo := &UserStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_USER)
	repo.SetAllColumns("id", "username", "email", "password", "salt", "created_at")
	return repo
}

// Create
func (s *UserStore) Create(ctx context.Context, data types.User) error {
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}
	query := sq.Insert(s.GetTable()).
		Columns("id", "username", "email", "password", "salt", "created_at").
		Values(data.ID, data.Username, data.Email, data.Password, data.Salt, data.CreatedAt)

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

// GetUser
func (s *UserStore) GetUser(ctx context.Context, id int64) (*types.User, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, errorSqlBuild(err)
	}

	var res types.User
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetByUsername
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*types.User, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"username": username})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, errorSqlBuild(err)
	}

	var res types.User
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

// ExistsByUsernameOrEmail backs the duplicate check on register.
func (s *UserStore) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).
		Where(sq.Or{sq.Eq{"username": username}, sq.Eq{"email": email}})

	queryString, args, err := query.ToSql()
	if err != nil {
		return false, errorSqlBuild(err)
	}

	var res int64
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return false, err
	}
	return res > 0, nil
}
