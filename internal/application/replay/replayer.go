package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/gamesnippets/internal/application/input"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input and frame time for the current frame and
// advances. ok is false once every frame was played.
func (r *Replayer) GetInput() (in input.State, dt float64, ok bool) {
	if r.frame >= len(r.data.Frames) {
		return input.State{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return input.State{Down: fi.D, Pressed: fi.P}, fi.DT, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Done reports whether every frame was played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}
