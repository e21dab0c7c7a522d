package common

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/netxfw/eventlog/internal/config"
	"github.com/netxfw/eventlog/internal/record"
	"github.com/netxfw/eventlog/internal/runtime"
	apperrors "github.com/netxfw/eventlog/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskConfirmation(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{" YES \n", true},
		{"y", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yep\n", false},
	}

	for _, tt := range tests {
		out := new(bytes.Buffer)
		got := AskConfirmation(strings.NewReader(tt.input), out, "Continue?")
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, "Continue? [y/N]: ", out.String())
	}
}

func TestFormatRecord(t *testing.T) {
	r := record.Record{Date: "07.07.2025", Time: "10:00:00", Type: "SYSTEM", Level: "WARNING", Message: "Low memory"}

	assert.Equal(t, "07.07.2025 10:00:00 SYSTEM WARNING Low memory", FormatRecord(r, false))
	assert.Equal(t, "07.07.2025 10:00:00 SYSTEM \x1b[33mWARNING\x1b[0m Low memory", FormatRecord(r, true))

	r.Level = "CUSTOM"
	assert.Equal(t, "07.07.2025 10:00:00 SYSTEM CUSTOM Low memory", FormatRecord(r, true))
}

func TestPrintCount(t *testing.T) {
	buf := new(bytes.Buffer)
	PrintCount(buf, 3, 0)
	assert.Equal(t, "\nTotal: 3 event(s)\n", buf.String())

	buf.Reset()
	PrintCount(buf, 0, 2)
	assert.Equal(t, "\nTotal: 0 event(s), 2 malformed line(s) skipped\n", buf.String())
}

func TestCommandExecutor_ConfigFromContext(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = "from-context.log"

	cmd := &cobra.Command{Use: "test"}
	cmd.SetContext(WithConfig(context.Background(), cfg))

	e := NewCommandExecutor(cmd)
	got, err := e.Config()
	require.NoError(t, err)
	assert.Same(t, cfg, got)

	j, err := e.Journal()
	require.NoError(t, err)
	assert.Equal(t, "from-context.log", j.Store().Path())
}

func TestCommandExecutor_UseColor(t *testing.T) {
	t.Cleanup(runtime.Reset)
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{Use: "test"}
	cmd.SetContext(WithConfig(context.Background(), cfg))

	assert.True(t, NewCommandExecutor(cmd).UseColor())

	runtime.NoColor = true
	assert.False(t, NewCommandExecutor(cmd).UseColor())
}

func TestCommandExecutor_Print(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	e := NewCommandExecutor(cmd)
	e.PrintSuccess("done")
	e.PrintWarning("careful")
	e.PrintError("failed")

	assert.Equal(t, "[OK] done\n", out.String())
	assert.Equal(t, "[WARN]  careful\n[ERROR] failed\n", errOut.String())
}

func TestCommandExecutor_Do(t *testing.T) {
	e := NewCommandExecutor(&cobra.Command{Use: "add"})

	require.NoError(t, e.Do(func() error { return nil }))

	err := e.Do(func() error { return apperrors.ErrMissingField })
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMissingField)
	assert.True(t, strings.HasPrefix(err.Error(), "add: "), err.Error())
}

func TestConfigFromContext_Missing(t *testing.T) {
	_, ok := ConfigFromContext(context.Background())
	assert.False(t, ok)
}
