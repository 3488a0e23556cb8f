package sqlstore

import (
	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/roamlog/roam-api/internal/store"
	"github.com/roamlog/roam-api/pkg/register"
	"github.com/roamlog/roam-api/pkg/sqlstore"
)

func init() {
	sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

var provider = &Provider{
	stores: &Stores{},
}

func GetProvider() *Provider {
	return provider
}

type Provider struct {
	*sqlstore.SqlProvider
	stores *Stores
}

type Stores struct {
	store.JournalEntryStore
	store.CountryStatusStore
	store.UserStore
}

type RegisterKey struct{}

func MustSetup(m sqlstore.ConnectConfig, s ...sqlstore.ConnectConfig) func() *Provider {
	provider.SqlProvider = sqlstore.MustSetupProvider(m, s...)

	for _, f := range register.ResolveFuncHandlers[*Provider](RegisterKey{}) {
		f(provider)
	}

	return func() *Provider {
		return provider
	}
}

func (p *Provider) JournalEntryStore() store.JournalEntryStore {
	return p.stores.JournalEntryStore
}

func (p *Provider) CountryStatusStore() store.CountryStatusStore {
	return p.stores.CountryStatusStore
}

func (p *Provider) UserStore() store.UserStore {
	return p.stores.UserStore
}
