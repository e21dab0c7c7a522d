package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/netxfw/eventlog/internal/record"
	apperrors "github.com/netxfw/eventlog/pkg/errors"
	"github.com/netxfw/eventlog/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 7, 7, 14, 3, 9, 500_000_000, time.Local)

func newTestJournal(lines ...string) (*Journal, *storage.MemoryStore) {
	store := storage.NewMemoryStore(lines...)
	return New(store).WithClock(func() time.Time { return fixedNow }), store
}

func sampleLines() []string {
	return []string{
		"07.07.2025 10:00:00 SYSTEM INFO Service started",
		"07.07.2025 10:05:00 USER WARNING Disk almost full",
		"garbage",
		"08.07.2025 09:00:00 APP ERROR Disk failure on sda",
		"08.07.2025 09:30:00 USER INFO login ok",
	}
}

func messagesOf(records []record.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Message)
	}
	return out
}

func TestAppend(t *testing.T) {
	j, store := newTestJournal()

	r, err := j.Append(context.Background(), "USER", "INFO", "User logged in")
	require.NoError(t, err)
	assert.Equal(t, record.Record{
		Date:    "07.07.2025",
		Time:    "14:03:09",
		Type:    "USER",
		Level:   "INFO",
		Message: "User logged in",
	}, r)

	lines, err := store.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"07.07.2025 14:03:09 USER INFO User logged in"}, lines)
}

func TestAppend_Validation(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		level     string
		message   string
		want      error
	}{
		{"missing type", "", "INFO", "m", apperrors.ErrMissingField},
		{"missing level", "USER", "", "m", apperrors.ErrMissingField},
		{"missing message", "USER", "INFO", "", apperrors.ErrMissingField},
		{"blank message", "USER", "INFO", "   ", apperrors.ErrMissingField},
		{"unknown type", "USERX", "INFO", "m", apperrors.ErrInvalidEventType},
		{"lower case type", "user", "INFO", "m", apperrors.ErrInvalidEventType},
		{"unknown level", "USER", "DEBUG", "m", apperrors.ErrInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, store := newTestJournal()
			_, err := j.Append(context.Background(), tt.eventType, tt.level, tt.message)
			assert.ErrorIs(t, err, tt.want)

			exists, _ := store.Exists()
			assert.False(t, exists, "nothing may be written on invalid input")
		})
	}
}

func TestAppendThenQuery_FileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "eventlog.log")
	j := New(storage.NewFileStore(path)).WithClock(func() time.Time { return fixedNow })
	ctx := context.Background()

	_, err := j.Append(ctx, "SYSTEM", "ERROR", "Disk failure")
	require.NoError(t, err)
	_, err = j.Append(ctx, "APP", "INFO", "cache warmed")
	require.NoError(t, err)

	res, err := j.Query(ctx, Query{Keyword: "Disk"})
	require.NoError(t, err)
	assert.False(t, res.Missing)
	assert.Equal(t, []string{"Disk failure"}, messagesOf(res.Records))
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"all", Query{}, []string{"Service started", "Disk almost full", "Disk failure on sda", "login ok"}},
		{"type", Query{Type: "USER"}, []string{"Disk almost full", "login ok"}},
		{"level", Query{Level: "ERROR"}, []string{"Disk failure on sda"}},
		{"date", Query{Date: "2025-07-08"}, []string{"Disk failure on sda", "login ok"}},
		{"keyword", Query{Keyword: "Disk"}, []string{"Disk almost full", "Disk failure on sda"}},
		{"keyword case sensitive", Query{Keyword: "disk"}, []string{}},
		{"combined", Query{Type: "USER", Date: "2025-07-07"}, []string{"Disk almost full"}},
		{"where", Query{Where: `Level != "INFO"`}, []string{"Disk almost full", "Disk failure on sda"}},
		{"limit", Query{Limit: 2}, []string{"Disk failure on sda", "login ok"}},
		{"limit larger than result", Query{Type: "APP", Limit: 5}, []string{"Disk failure on sda"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, _ := newTestJournal(sampleLines()...)
			res, err := j.Query(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, messagesOf(res.Records))
			assert.Equal(t, 1, res.Malformed)
		})
	}
}

func TestQuery_FailFast(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  error
	}{
		{"bad month", Query{Date: "2025-13-01"}, apperrors.ErrInvalidDateFormat},
		{"on-disk date form", Query{Date: "07.07.2025"}, apperrors.ErrInvalidDateFormat},
		{"bad expression", Query{Where: "Level ==="}, apperrors.ErrInvalidExpression},
		{"negative limit", Query{Limit: -1}, apperrors.ErrInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, _ := newTestJournal(sampleLines()...)
			res, err := j.Query(context.Background(), tt.query)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, res)
		})
	}
}

func TestQuery_MissingLog(t *testing.T) {
	j, _ := newTestJournal()

	res, err := j.Query(context.Background(), Query{})
	require.NoError(t, err)
	assert.True(t, res.Missing)
	assert.Empty(t, res.Records)
}

func TestQuery_EmptyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eventlog.log")
	store := storage.NewFileStore(path)
	j := New(store)
	require.NoError(t, store.Append(""))
	require.NoError(t, store.Truncate())

	res, err := j.Query(context.Background(), Query{})
	require.NoError(t, err)
	assert.False(t, res.Missing)
	assert.Empty(t, res.Records)
}

func TestClear(t *testing.T) {
	ctx := context.Background()

	t.Run("not confirmed", func(t *testing.T) {
		j, store := newTestJournal(sampleLines()...)
		assert.ErrorIs(t, j.Clear(ctx, false), apperrors.ErrClearNotConfirmed)
		lines, _ := store.ReadAll()
		assert.Len(t, lines, len(sampleLines()))
	})

	t.Run("confirmed", func(t *testing.T) {
		j, store := newTestJournal(sampleLines()...)
		require.NoError(t, j.Clear(ctx, true))
		lines, _ := store.ReadAll()
		assert.Empty(t, lines)

		res, err := j.Query(ctx, Query{})
		require.NoError(t, err)
		assert.False(t, res.Missing)
		assert.Empty(t, res.Records)
	})

	t.Run("missing log", func(t *testing.T) {
		j, _ := newTestJournal()
		assert.ErrorIs(t, j.Clear(ctx, true), apperrors.ErrLogNotFound)
	})
}

func TestStats(t *testing.T) {
	j, _ := newTestJournal(sampleLines()...)

	s, err := j.Stats(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.Malformed)
	assert.Equal(t, 2, s.ByType["USER"])
	assert.Equal(t, 2, s.ByLevel["INFO"])
	assert.Equal(t, 1, s.Counts[Key{Type: "APP", Level: "ERROR"}])
	assert.Equal(t, time.Date(2025, 7, 8, 9, 30, 0, 0, time.Local), s.Last)
}

func TestStats_Missing(t *testing.T) {
	j, _ := newTestJournal()

	s, err := j.Stats(context.Background(), Query{})
	require.NoError(t, err)
	assert.True(t, s.Missing)
	assert.Zero(t, s.Total)
	assert.True(t, s.Last.IsZero())
}

func TestStats_PropagatesQueryError(t *testing.T) {
	j, _ := newTestJournal(sampleLines()...)

	_, err := j.Stats(context.Background(), Query{Date: "July 7"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateFormat)
}
