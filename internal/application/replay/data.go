// Package replay records per-frame input to JSON and plays it back, so a
// typing run with a given seed can be reproduced exactly.
package replay

import "github.com/younwookim/gamesnippets/internal/application/input"

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int          `json:"f"`           // Frame number
	D  input.KeySet `json:"d,omitempty"` // Keys held
	P  input.KeySet `json:"p,omitempty"` // Keys pressed this frame
	DT float64      `json:"dt"`          // Frame time in seconds
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
