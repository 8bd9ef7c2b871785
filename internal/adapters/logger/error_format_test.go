package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/snodelist/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name: "zerr with metadata",
			err: zerr.With(
				zerr.With(zerr.New("base error"), "key1", "value1"),
				"key2", 42,
			),
			wantMessages: []string{"base error"},
			wantMetadata: []map[string]any{{"key1": "value1", "key2": 42}},
		},
		{
			name:         "nil error handling",
			err:          nil,
			wantMessages: nil,
			wantMetadata: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntriesExported(tt.err)

			var messages []string
			var metadata []map[string]any
			for _, e := range entries {
				messages = append(messages, e.Message)
				metadata = append(metadata, e.Metadata)
			}
			assert.Equal(t, tt.wantMessages, messages)
			assert.Equal(t, tt.wantMetadata, metadata)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	entries := []logger.ErrorEntry{
		{Message: "outer", Metadata: map[string]any{"b": 2, "a": "x"}},
		{Message: "middle"},
		{Message: "root"},
	}

	want := "Error: outer\n" +
		"       a: x\n" +
		"       b: 2\n" +
		"\n" +
		"  Caused by:\n" +
		"    → middle\n" +
		"    → root"
	assert.Equal(t, want, logger.FormatErrorEntriesExported(entries))
}

func TestCollectErrorEntries_MetadataOnPlainError(t *testing.T) {
	err := zerr.With(errors.New("permission denied"), "path", "/etc/nodes")

	entries := logger.CollectErrorEntriesExported(err)

	assert.Equal(t, []logger.ErrorEntry{
		{Message: "permission denied", Metadata: map[string]any{"path": "/etc/nodes"}},
	}, entries)
}
