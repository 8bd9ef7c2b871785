package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snodelist/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	return l, buf
}

func TestLogger_InfoWarn(t *testing.T) {
	l, buf := newTestLogger(t)

	l.Info("expanding host list")
	l.Warn("reading node list from a terminal")

	assert.Equal(t, "expanding host list\n! reading node list from a terminal\n", buf.String())
}

func TestLogger_Error_Golden(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "plain error",
			err:        errors.New("permission denied"),
			goldenName: "error_plain",
		},
		{
			name: "metadata and cause",
			err: zerr.With(
				zerr.Wrap(
					zerr.With(zerr.New("invalid repeat count"), "offset", 4),
					"failed to generate machine file",
				),
				"spec", "2(x0)",
			),
			goldenName: "error_chain",
		},
		{
			name:       "multi-line message",
			err:        zerr.New("first line\nsecond line"),
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestLogger(t)
			l.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	l, buf := newTestLogger(t)
	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetJSON(true)

	l.Error(zerr.With(zerr.New("missing environment variable"), "variable", "SLURM_TASKS_PER_NODE"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "SLURM_TASKS_PER_NODE", record["variable"])
	assert.Contains(t, record["error"], "missing environment variable")

	buf.Reset()
	l.SetJSON(false)
	l.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestLogger_SetOutput_KeepsJSON(t *testing.T) {
	l, _ := newTestLogger(t)
	l.SetJSON(true)

	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	l.Info("hello")

	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
