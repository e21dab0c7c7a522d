package follow

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/netxfw/eventlog/internal/filter"
	"github.com/netxfw/eventlog/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = "07.07.2025 10:00:00 SYSTEM INFO Service started\n" +
	"not a record\n" +
	"07.07.2025 10:05:00 USER ERROR Login failed\n" +
	"08.07.2025 09:00:00 APP ERROR Crash\n"

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eventlog.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_ReadToEOF(t *testing.T) {
	path := writeLog(t, sampleLog)
	m, err := filter.Compile(filter.Criteria{Level: "ERROR"})
	require.NoError(t, err)

	var got []string
	f := New(path, m, Options{FromStart: true})
	summary, err := f.Run(context.Background(), func(r record.Record) error {
		got = append(got, r.Message)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Login failed", "Crash"}, got)
	assert.Equal(t, Summary{Matched: 2, Malformed: 1}, summary)
}

func TestRun_NilMatcherAcceptsAll(t *testing.T) {
	path := writeLog(t, sampleLog)

	summary, err := New(path, nil, Options{FromStart: true}).Run(context.Background(), func(record.Record) error {
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Matched)
}

func TestRun_MissingFileWithoutFollow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.log")

	_, err := New(path, nil, Options{FromStart: true}).Run(context.Background(), func(record.Record) error {
		return nil
	})
	assert.Error(t, err)
}

func TestRun_HandlerErrorStops(t *testing.T) {
	path := writeLog(t, sampleLog)
	stop := errors.New("stop")

	calls := 0
	summary, err := New(path, nil, Options{FromStart: true}).Run(context.Background(), func(record.Record) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, summary.Matched)
}

func TestRun_FollowNewLines(t *testing.T) {
	path := writeLog(t, sampleLog)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	received := make(chan record.Record, 10)
	done := make(chan error, 1)
	go func() {
		_, err := New(path, nil, Options{Follow: true}).Run(ctx, func(r record.Record) error {
			received <- r
			return nil
		})
		done <- err
	}()

	// Give the tailer time to seek to the end before appending.
	// 在追加之前给跟随器时间定位到文件末尾。
	time.Sleep(500 * time.Millisecond)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("09.07.2025 11:00:00 USER INFO New session\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	select {
	case r := <-received:
		assert.Equal(t, "New session", r.Message)
	case <-ctx.Done():
		t.Fatal("timed out waiting for followed record")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("follower did not stop after cancel")
	}
}
