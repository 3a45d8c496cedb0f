package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gautham-gln/chatSummarizer/internal/parse"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "chatsum.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testMessages() []parse.Message {
	base := time.Date(2023, 5, 12, 9, 0, 0, 0, time.UTC)
	return []parse.Message{
		{Sender: "Alice", Body: "Hi", Timestamp: base},
		{Sender: "Bob", Body: "Hello\nstill talking", Timestamp: base.Add(5 * time.Minute)},
		{Sender: "Alice", Body: "Bye", Timestamp: base.Add(10 * time.Minute)},
	}
}

func TestReplaceAllAndReadAll(t *testing.T) {
	db := openTestDB(t)

	n, err := db.ReplaceAll(testMessages())
	require.NoError(t, err)
	require.Equal(t, 3, n)

	got, err := db.ReadAll(time.UTC)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Insertion order preserved, surrogate keys attached and monotonic.
	require.Equal(t, "Alice", got[0].Sender)
	require.Equal(t, "Bob", got[1].Sender)
	require.Equal(t, "Hello\nstill talking", got[1].Body)
	require.Positive(t, got[0].ID)
	require.Greater(t, got[1].ID, got[0].ID)
	require.Greater(t, got[2].ID, got[1].ID)

	require.True(t, got[1].Timestamp.Equal(testMessages()[1].Timestamp))
}

func TestReplaceAllClearsPreviousBatch(t *testing.T) {
	db := openTestDB(t)

	_, err := db.ReplaceAll(testMessages())
	require.NoError(t, err)

	replacement := []parse.Message{
		{Sender: "Carol", Body: "new batch", Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
	}
	n, err := db.ReplaceAll(replacement)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	got, err := db.ReadAll(time.UTC)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Carol", got[0].Sender)
}

func TestReplaceAllEmptyBatch(t *testing.T) {
	db := openTestDB(t)

	_, err := db.ReplaceAll(testMessages())
	require.NoError(t, err)

	n, err := db.ReplaceAll(nil)
	require.NoError(t, err)
	require.Zero(t, n)

	count, err := db.Count()
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestReadAllRehydratesLocation(t *testing.T) {
	db := openTestDB(t)
	loc := time.FixedZone("IST", 5*3600+1800)

	msgs := []parse.Message{
		{Sender: "Alice", Body: "Hi", Timestamp: time.Date(2023, 5, 12, 9, 0, 0, 0, loc)},
	}
	_, err := db.ReplaceAll(msgs)
	require.NoError(t, err)

	got, err := db.ReadAll(loc)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 9, got[0].Timestamp.Hour(), "wall clock survives the round trip")
}

func TestCount(t *testing.T) {
	db := openTestDB(t)

	count, err := db.Count()
	require.NoError(t, err)
	require.Zero(t, count)

	_, err = db.ReplaceAll(testMessages())
	require.NoError(t, err)

	count, err = db.Count()
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestResetTearsDownAndRecreates(t *testing.T) {
	db := openTestDB(t)

	_, err := db.ReplaceAll(testMessages())
	require.NoError(t, err)

	require.NoError(t, db.Reset())

	count, err := db.Count()
	require.NoError(t, err)
	require.Zero(t, count)

	// The recreated store accepts new imports without reopening.
	n, err := db.ReplaceAll(testMessages())
	require.NoError(t, err)
	require.Equal(t, 3, n)
}
