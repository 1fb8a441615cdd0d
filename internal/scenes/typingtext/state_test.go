package typingtext

import (
	"bytes"
	"log"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/gamesnippets/internal/application/scene"
	"github.com/younwookim/gamesnippets/internal/domain/typing"
	"github.com/younwookim/gamesnippets/internal/infrastructure/config"
)

func TestNew_FromAssets(t *testing.T) {
	ctx := &scene.Context{
		Assets: fstest.MapFS{
			"typing.yaml": {Data: []byte("text: ab\ncharsPerSecond: 10\nskipMode: fast_forward\n")},
		},
	}

	st := New(ctx)
	require.NotNil(t, st.Text)
	assert.Equal(t, 2, st.Text.Len())
	assert.Equal(t, 0, st.Text.Cursor())
	assert.Equal(t, typing.StateChooseLetter, st.Text.State())
	assert.InDelta(t, 0.1, st.Text.TypingDelay, 1e-9)
	assert.Equal(t, typing.SkipFastForward, st.Settings.SkipMode)
}

func TestNew_FallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name   string
		assets fstest.MapFS
		logHas string
	}{
		{name: "no assets"},
		{name: "missing file", assets: fstest.MapFS{}, logHas: "using built-in text"},
		{name: "invalid file", assets: fstest.MapFS{"typing.yaml": {Data: []byte("skipMode: warp")}}, logHas: "skipMode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := &scene.Context{Logger: log.New(&buf, "", 0)}
			if tt.assets != nil {
				ctx.Assets = tt.assets
			}

			st := New(ctx)
			assert.Equal(t, typing.DefaultSettings(), st.Settings)
			assert.Equal(t, len(config.LoremTwoParagraphs), st.Text.Len())
			if tt.logHas != "" {
				assert.Contains(t, buf.String(), tt.logHas)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNew_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		New(&scene.Context{Assets: fstest.MapFS{}})
	})
}
