// Package storetest provides an in-memory store.Provider for tests. It mirrors
// the sqlstore contracts: missing rows surface as sql.ErrNoRows, lists come
// back newest-first with the country status joined in, updates report matched
// rows.
package storetest

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/roamlog/roam-api/internal/store"
	"github.com/roamlog/roam-api/pkg/types"
)

type statusKey struct {
	userID int64
	code   string
}

type Provider struct {
	mu       sync.Mutex
	entries  []types.JournalEntry
	statuses map[statusKey]types.CountryStatus
	users    map[int64]types.User

	// FailWrites makes every mutating call fail, for storage-error paths.
	FailWrites error
}

func NewProvider() *Provider {
	return &Provider{
		statuses: make(map[statusKey]types.CountryStatus),
		users:    make(map[int64]types.User),
	}
}

func (p *Provider) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (p *Provider) JournalEntryStore() store.JournalEntryStore {
	return &journalEntryStore{p}
}

func (p *Provider) CountryStatusStore() store.CountryStatusStore {
	return &countryStatusStore{p}
}

func (p *Provider) UserStore() store.UserStore {
	return &userStore{p}
}

type journalEntryStore struct {
	p *Provider
}

func (s *journalEntryStore) Create(ctx context.Context, data types.JournalEntry) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	if s.p.FailWrites != nil {
		return s.p.FailWrites
	}
	s.p.entries = append(s.p.entries, data)
	return nil
}

func (s *journalEntryStore) Get(ctx context.Context, userID, id int64) (*types.JournalEntry, error) {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	for _, e := range s.p.entries {
		if e.ID == id && e.UserID == userID {
			res := s.p.joined(e)
			return &res, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *journalEntryStore) List(ctx context.Context, userID int64) ([]types.JournalEntry, error) {
	return s.list(userID, "")
}

func (s *journalEntryStore) ListByCountry(ctx context.Context, userID int64, countryCode string) ([]types.JournalEntry, error) {
	return s.list(userID, countryCode)
}

func (s *journalEntryStore) list(userID int64, countryCode string) ([]types.JournalEntry, error) {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	var res []types.JournalEntry
	for _, e := range s.p.entries {
		if e.UserID != userID {
			continue
		}
		if countryCode != "" && e.CountryCode != countryCode {
			continue
		}
		res = append(res, s.p.joined(e))
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].ID > res[j].ID
		}
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	return res, nil
}

func (s *journalEntryStore) Update(ctx context.Context, userID, id int64, entry, visitStatus *string) (int64, error) {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	if s.p.FailWrites != nil {
		return 0, s.p.FailWrites
	}
	for i := range s.p.entries {
		e := &s.p.entries[i]
		if e.ID != id || e.UserID != userID {
			continue
		}
		if entry != nil {
			e.Entry = *entry
		}
		if visitStatus != nil {
			e.VisitStatus = *visitStatus
		}
		e.UpdatedAt = time.Now()
		return 1, nil
	}
	return 0, nil
}

func (s *journalEntryStore) Delete(ctx context.Context, userID, id int64) (int64, error) {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	if s.p.FailWrites != nil {
		return 0, s.p.FailWrites
	}
	for i, e := range s.p.entries {
		if e.ID == id && e.UserID == userID {
			s.p.entries = append(s.p.entries[:i], s.p.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (p *Provider) joined(e types.JournalEntry) types.JournalEntry {
	if st, ok := p.statuses[statusKey{e.UserID, e.CountryCode}]; ok {
		e.CountryVisitStatus = sql.NullString{String: st.VisitStatus, Valid: true}
	} else {
		e.CountryVisitStatus = sql.NullString{}
	}
	return e
}

type countryStatusStore struct {
	p *Provider
}

func (s *countryStatusStore) Upsert(ctx context.Context, data types.CountryStatus) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	if s.p.FailWrites != nil {
		return s.p.FailWrites
	}
	s.p.statuses[statusKey{data.UserID, data.CountryCode}] = data
	return nil
}

func (s *countryStatusStore) Get(ctx context.Context, userID int64, countryCode string) (*types.CountryStatus, error) {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	if st, ok := s.p.statuses[statusKey{userID, countryCode}]; ok {
		return &st, nil
	}
	return nil, sql.ErrNoRows
}

type userStore struct {
	p *Provider
}

func (s *userStore) Create(ctx context.Context, data types.User) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	if s.p.FailWrites != nil {
		return s.p.FailWrites
	}
	s.p.users[data.ID] = data
	return nil
}

func (s *userStore) GetUser(ctx context.Context, id int64) (*types.User, error) {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	if u, ok := s.p.users[id]; ok {
		return &u, nil
	}
	return nil, sql.ErrNoRows
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*types.User, error) {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	for _, u := range s.p.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *userStore) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	for _, u := range s.p.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
