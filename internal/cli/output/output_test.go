package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRendererModes(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want Mode
	}{
		{"auto resolves to text", ModeAuto, ModeText},
		{"empty resolves to text", Mode(""), ModeText},
		{"text stays text", ModeText, ModeText},
		{"json stays json", ModeJSON, ModeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestRendererUnstyledForBuffers(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRenderer(buf, &bytes.Buffer{}, ModeAuto)

	r.Success("done")
	assert.Equal(t, "done\n", buf.String(), "non-terminal output carries no escape codes")
}

func TestRendererPrintf(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRenderer(buf, &bytes.Buffer{}, ModeText)

	r.Printf("%d findings\n", 13)
	assert.Equal(t, "13 findings\n", buf.String())
}

func TestRendererJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewRenderer(buf, &bytes.Buffer{}, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"rows": 6}))
	assert.JSONEq(t, `{"rows": 6}`, buf.String())
	assert.Contains(t, buf.String(), "\n", "output is indented and newline terminated")
}
