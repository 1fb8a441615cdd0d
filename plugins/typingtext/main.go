// Command typingtext is the typing text scene, built as a Go plugin:
//
//	go run ./cmd/buildscene
//
// The host picks up a new build within a second. Each build needs its own
// package path, otherwise the runtime refuses to open the second copy;
// buildscene takes care of that.
package main

import (
	"github.com/younwookim/gamesnippets/internal/application/scene"
)

// SceneFunctions is looked up by the host after every load
func SceneFunctions() scene.Scene {
	return typingScene{}
}

func main() {}
