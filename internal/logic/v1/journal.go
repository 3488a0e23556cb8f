package v1

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/roamlog/roam-api/internal/core"
	"github.com/roamlog/roam-api/pkg/errors"
	"github.com/roamlog/roam-api/pkg/i18n"
	"github.com/roamlog/roam-api/pkg/security"
	"github.com/roamlog/roam-api/pkg/types"
	"github.com/roamlog/roam-api/pkg/utils"
)

type JournalLogic struct {
	ctx  context.Context
	core *core.Core
	user security.TokenClaims
}

func NewJournalLogic(ctx context.Context, core *core.Core) *JournalLogic {
	return &JournalLogic{
		ctx:  ctx,
		core: core,
		user: setupUserInfo(ctx),
	}
}

// ListEntries returns every entry of the caller, newest first, with the
// current country status overriding each entry's stored status.
func (l *JournalLogic) ListEntries() ([]types.JournalEntry, error) {
	list, err := l.core.Store().JournalEntryStore().List(l.ctx, l.user.UserID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JournalLogic.ListEntries.JournalEntryStore.List", i18n.ERROR_INTERNAL, err)
	}
	return overrideStatuses(list), nil
}

// ListEntriesForCountry
func (l *JournalLogic) ListEntriesForCountry(countryCode string) ([]types.JournalEntry, error) {
	list, err := l.core.Store().JournalEntryStore().ListByCountry(l.ctx, l.user.UserID, countryCode)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JournalLogic.ListEntriesForCountry.JournalEntryStore.ListByCountry", i18n.ERROR_INTERNAL, err)
	}
	return overrideStatuses(list), nil
}

// overrideStatuses applies the country_status precedence rule. Always returns
// a non-nil slice; list endpoints respond with arrays, never null.
func overrideStatuses(list []types.JournalEntry) []types.JournalEntry {
	return lo.Map(list, func(e types.JournalEntry, _ int) types.JournalEntry {
		if e.CountryVisitStatus.Valid && e.CountryVisitStatus.String != "" {
			e.VisitStatus = e.CountryVisitStatus.String
		}
		return e
	})
}

// UpsertEntry always writes the country status row; an additional journal row
// is created only when the entry text is non-blank. The returned entry is nil
// for a status-only write so callers can tell the two results apart.
func (l *JournalLogic) UpsertEntry(countryCode, countryName, entryText, visitStatus string) (*types.JournalEntry, *types.CountryStatus, error) {
	if countryCode == "" || countryName == "" {
		return nil, nil, errors.New("JournalLogic.UpsertEntry.check", i18n.ERROR_COUNTRY_REQUIRED, nil).Code(http.StatusBadRequest)
	}
	if visitStatus == "" {
		visitStatus = types.VISIT_STATUS_NOT_VISITED
	}

	now := time.Now()
	status := types.CountryStatus{
		UserID:      l.user.UserID,
		CountryCode: countryCode,
		CountryName: countryName,
		VisitStatus: visitStatus,
		UpdatedAt:   now,
	}

	var created *types.JournalEntry
	err := l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		// Status first; the entry insert must not happen if this fails.
		if err := l.core.Store().CountryStatusStore().Upsert(ctx, status); err != nil {
			return errors.New("JournalLogic.UpsertEntry.CountryStatusStore.Upsert", i18n.ERROR_INTERNAL, err)
		}

		if strings.TrimSpace(entryText) == "" {
			return nil
		}

		entry := types.JournalEntry{
			ID:          utils.GenSpecID(),
			UserID:      l.user.UserID,
			CountryCode: countryCode,
			CountryName: countryName,
			Entry:       entryText,
			VisitStatus: visitStatus,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := l.core.Store().JournalEntryStore().Create(ctx, entry); err != nil {
			return errors.New("JournalLogic.UpsertEntry.JournalEntryStore.Create", i18n.ERROR_INTERNAL, err)
		}
		created = &entry
		return nil
	})
	if err != nil {
		return nil, nil, errors.Trace("JournalLogic.UpsertEntry", err)
	}

	return created, &status, nil
}

// UpdateEntry applies a partial update. Nil fields keep their stored value.
// Ownership is part of the row match, so an unowned id behaves exactly like a
// missing one.
func (l *JournalLogic) UpdateEntry(id int64, entryText, visitStatus *string) (*types.JournalEntry, error) {
	affected, err := l.core.Store().JournalEntryStore().Update(l.ctx, l.user.UserID, id, entryText, visitStatus)
	if err != nil {
		return nil, errors.New("JournalLogic.UpdateEntry.JournalEntryStore.Update", i18n.ERROR_INTERNAL, err)
	}
	if affected == 0 {
		return nil, errors.New("JournalLogic.UpdateEntry.affected.zero", i18n.ERROR_ENTRY_NOTFOUND, nil).Code(http.StatusNotFound)
	}

	data, err := l.core.Store().JournalEntryStore().Get(l.ctx, l.user.UserID, id)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JournalLogic.UpdateEntry.JournalEntryStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if data == nil {
		return nil, errors.New("JournalLogic.UpdateEntry.JournalEntryStore.Get.nil", i18n.ERROR_ENTRY_NOTFOUND, nil).Code(http.StatusNotFound)
	}

	if data.CountryVisitStatus.Valid && data.CountryVisitStatus.String != "" {
		data.VisitStatus = data.CountryVisitStatus.String
	}
	return data, nil
}

// DeleteEntry
func (l *JournalLogic) DeleteEntry(id int64) error {
	affected, err := l.core.Store().JournalEntryStore().Delete(l.ctx, l.user.UserID, id)
	if err != nil {
		return errors.New("JournalLogic.DeleteEntry.JournalEntryStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	if affected == 0 {
		return errors.New("JournalLogic.DeleteEntry.affected.zero", i18n.ERROR_ENTRY_NOTFOUND, nil).Code(http.StatusNotFound)
	}
	return nil
}

// GetStatus never fails for an unknown country: it synthesizes the default
// not-visited status instead.
func (l *JournalLogic) GetStatus(countryCode string) (*types.CountryStatus, error) {
	data, err := l.core.Store().CountryStatusStore().Get(l.ctx, l.user.UserID, countryCode)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("JournalLogic.GetStatus.CountryStatusStore.Get", i18n.ERROR_INTERNAL, err)
	}
	if data == nil {
		return &types.CountryStatus{
			UserID:      l.user.UserID,
			CountryCode: countryCode,
			VisitStatus: types.VISIT_STATUS_NOT_VISITED,
		}, nil
	}
	return data, nil
}
