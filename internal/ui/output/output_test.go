package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/snodelist/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNew_PlainWhenNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	out := output.New(buf)
	_, err := out.WriteString(out.String("plain").Foreground(termenv.ANSIRed).String())

	assert.NoError(t, err)
	assert.Equal(t, "plain", buf.String())
}
