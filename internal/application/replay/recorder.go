package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/gamesnippets/internal/application/input"
)

// ErrNoFrames is returned when saving an empty recording
var ErrNoFrames = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64, scene string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Scene:     scene,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(in input.State, dt float64) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  len(r.data.Frames),
		D:  in.Down,
		P:  in.Pressed,
		DT: dt,
	})
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
