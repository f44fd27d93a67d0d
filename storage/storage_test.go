package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndRecentDispatches(t *testing.T) {
	db := openTestDB(t)

	first := &Dispatch{
		Hotkey:           "f1",
		Provider:         "mistral",
		Model:            "mistral-large-latest",
		SelectionChars:   10,
		ResponseChars:    42,
		RequestLatencyMs: 850,
		Success:          true,
	}
	require.NoError(t, db.SaveDispatch(first))
	require.NotZero(t, first.ID)

	second := &Dispatch{
		Hotkey:       "f2",
		Provider:     "mistral",
		Model:        "mistral-large-latest",
		Success:      false,
		ErrorMessage: "mistral API error (status 401)",
	}
	require.NoError(t, db.SaveDispatch(second))

	recent, err := db.RecentDispatches(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// Most recent first
	require.Equal(t, "f2", recent[0].Hotkey)
	require.False(t, recent[0].Success)
	require.Equal(t, "mistral API error (status 401)", recent[0].ErrorMessage)

	require.Equal(t, "f1", recent[1].Hotkey)
	require.True(t, recent[1].Success)
	require.Equal(t, int64(850), recent[1].RequestLatencyMs)
}

func TestRecentDispatchesLimit(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, db.SaveDispatch(&Dispatch{
			Hotkey: "f1", Provider: "mistral", Model: "m", Success: true,
		}))
	}

	recent, err := db.RecentDispatches(3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
}

func TestTotals(t *testing.T) {
	db := openTestDB(t)

	total, succeeded, err := db.Totals()
	require.NoError(t, err)
	require.Zero(t, total)
	require.Zero(t, succeeded)

	require.NoError(t, db.SaveDispatch(&Dispatch{Hotkey: "f1", Provider: "mistral", Model: "m", Success: true}))
	require.NoError(t, db.SaveDispatch(&Dispatch{Hotkey: "f1", Provider: "mistral", Model: "m", Success: false}))

	total, succeeded, err = db.Totals()
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Equal(t, 1, succeeded)
}
