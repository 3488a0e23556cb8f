package v1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamlog/roam-api/internal/core"
	"github.com/roamlog/roam-api/internal/store/storetest"
	"github.com/roamlog/roam-api/pkg/security"
	"github.com/roamlog/roam-api/pkg/types"
)

func newTestLogicCtx(userID int64) (context.Context, *core.Core, *storetest.Provider) {
	provider := storetest.NewProvider()
	app := core.NewWithStore(core.CoreConfig{}, provider)
	ctx := context.WithValue(context.Background(), TOKEN_CONTEXT_KEY, security.TokenClaims{UserID: userID})
	return ctx, app, provider
}

func TestUpsertEntryStatusOnly(t *testing.T) {
	ctx, app, _ := newTestLogicCtx(1)
	logic := NewJournalLogic(ctx, app)

	entry, status, err := logic.UpsertEntry("SE", "Sweden", "  ", "")
	require.NoError(t, err)
	assert.Nil(t, entry)
	require.NotNil(t, status)
	assert.Equal(t, types.VISIT_STATUS_NOT_VISITED, status.VisitStatus)

	list, err := logic.ListEntries()
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestUpsertEntryWithText(t *testing.T) {
	ctx, app, _ := newTestLogicCtx(1)
	logic := NewJournalLogic(ctx, app)

	entry, status, err := logic.UpsertEntry("FI", "Finland", "Great trip!", "visited")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.NotZero(t, entry.ID)
	assert.Equal(t, "Great trip!", entry.Entry)
	assert.Equal(t, "visited", status.VisitStatus)

	_, _, err = logic.UpsertEntry("", "Finland", "x", "")
	require.Error(t, err)
}

func TestUpsertEntryRollsBackOnFailure(t *testing.T) {
	ctx, app, provider := newTestLogicCtx(1)
	logic := NewJournalLogic(ctx, app)

	provider.FailWrites = assert.AnError
	_, _, err := logic.UpsertEntry("FI", "Finland", "Great trip!", "visited")
	require.Error(t, err)
}

func TestUpdateEntryPartial(t *testing.T) {
	ctx, app, _ := newTestLogicCtx(1)
	logic := NewJournalLogic(ctx, app)

	created, _, err := logic.UpsertEntry("FI", "Finland", "draft", "visited")
	require.NoError(t, err)

	text := "final"
	updated, err := logic.UpdateEntry(created.ID, &text, nil)
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Entry)
	assert.Equal(t, "visited", updated.VisitStatus)

	_, err = logic.UpdateEntry(999999, &text, nil)
	require.Error(t, err)
}

func TestUpdateEntryStatusOnly(t *testing.T) {
	ctx, app, provider := newTestLogicCtx(1)
	logic := NewJournalLogic(ctx, app)

	// Seed the entry without a country status row, so the stored entry status
	// is observable on reads.
	seed := types.JournalEntry{
		ID:          77,
		UserID:      1,
		CountryCode: "FI",
		CountryName: "Finland",
		Entry:       "keep me",
		VisitStatus: "visited",
	}
	require.NoError(t, provider.JournalEntryStore().Create(ctx, seed))

	status := "want-to-visit"
	updated, err := logic.UpdateEntry(seed.ID, nil, &status)
	require.NoError(t, err)
	assert.Equal(t, "keep me", updated.Entry)
	assert.Equal(t, "want-to-visit", updated.VisitStatus)
}

func TestEntriesIsolatedPerUser(t *testing.T) {
	ctx, app, _ := newTestLogicCtx(1)
	logic := NewJournalLogic(ctx, app)

	created, _, err := logic.UpsertEntry("FI", "Finland", "mine", "visited")
	require.NoError(t, err)

	otherCtx := context.WithValue(context.Background(), TOKEN_CONTEXT_KEY, security.TokenClaims{UserID: 2})
	other := NewJournalLogic(otherCtx, app)

	list, err := other.ListEntries()
	require.NoError(t, err)
	assert.Empty(t, list)

	err = other.DeleteEntry(created.ID)
	require.Error(t, err)

	// Still there for the owner.
	list, err = logic.ListEntries()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGetStatusSynthesizesDefault(t *testing.T) {
	ctx, app, _ := newTestLogicCtx(1)
	logic := NewJournalLogic(ctx, app)

	status, err := logic.GetStatus("JP")
	require.NoError(t, err)
	assert.Equal(t, "JP", status.CountryCode)
	assert.Equal(t, types.VISIT_STATUS_NOT_VISITED, status.VisitStatus)
}
