package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/gamesnippets/internal/application/input"
)

var (
	space = input.KeySet(0).With(input.KeySpace)
	tab   = input.KeySet(0).With(input.KeyTab)
)

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: Version,
		Seed:    42,
		Scene:   "test",
		Frames: []FrameInput{
			{F: 0, DT: 1.0 / 60},
			{F: 1, D: space, P: space, DT: 1.0 / 60},
			{F: 2, D: space | tab, P: tab, DT: 0.5},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	in, dt, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, input.State{}, in)
	assert.InDelta(t, 1.0/60, dt, 1e-12)

	// Frame 1
	in, _, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, in.IsDown(input.KeySpace))
	assert.True(t, in.IsPressed(input.KeySpace))

	// Frame 2
	in, dt, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, in.IsDown(input.KeySpace))
	assert.False(t, in.IsPressed(input.KeySpace))
	assert.True(t, in.IsPressed(input.KeyTab))
	assert.Equal(t, 0.5, dt)

	// End of frames
	_, _, ok = replayer.GetInput()
	assert.False(t, ok)
	assert.True(t, replayer.Done())
}

func TestReplayer_Frames(t *testing.T) {
	replayer := NewReplayer(ReplayData{Seed: 99999, Frames: make([]FrameInput, 3)})

	assert.Equal(t, int64(99999), replayer.Seed())
	assert.Equal(t, 3, replayer.TotalFrames())
	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 2, replayer.CurrentFrame())
	assert.False(t, replayer.Done())

	_, _, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, replayer.Done())
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder(7, "typingtext")
	assert.True(t, rec.IsRecording())

	rec.RecordFrame(input.State{}, 0.1)
	rec.RecordFrame(input.State{Down: space, Pressed: space}, 0.2)

	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, "typingtext", data.Scene)
	require.Len(t, data.Frames, 2)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.Equal(t, space, data.Frames[1].D)

	rec.Stop()
	rec.RecordFrame(input.State{}, 0.1)
	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount(), "stopped recorder ignores frames")
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	rec := NewRecorder(12345, "typingtext")
	rec.RecordFrame(input.State{}, 1.0/60)
	rec.RecordFrame(input.State{Down: space | tab, Pressed: tab}, 1.0/60)

	require.NoError(t, rec.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, rec.Data(), *loaded)

	replayer := NewReplayer(*loaded)
	assert.Equal(t, int64(12345), replayer.Seed())
	replayer.GetInput()
	in, _, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, in.IsPressed(input.KeyTab))
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder(1, "typingtext")
	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadReplay(bad)
	assert.ErrorContains(t, err, "failed to decode replay")
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.True(t, strings.HasPrefix(name, "replay_"))
	assert.True(t, strings.HasSuffix(name, ".json"))
}
