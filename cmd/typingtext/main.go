// Command typingtext shows a paragraph being typed, with simulated typos,
// by a scene loaded from a hot-reloadable Go plugin.
//
// Build the scene first:
//
//	go run ./cmd/buildscene
//
// Keys: hold SPACE to skip, TAB toggles the skip mode, R restarts,
// F5 reloads the scene from scratch, ESC quits.
package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/younwookim/gamesnippets/internal/application/hotreload"
	"github.com/younwookim/gamesnippets/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	assetsFlag := flag.String("assets", "", "Load host.json and typing.yaml from this directory instead of the built-in configs")
	libraryFlag := flag.String("library", "", "Scene module to load (overrides reload.library)")
	termFlag := flag.Bool("term", false, "Run in the terminal instead of a window")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or auto for a timestamped name)")
	replayFlag := flag.String("replay", "", "Play back input recorded with -record")
	seedFlag := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	logFlag := flag.String("log", "", "Write logs to this file (default: stderr, typingtext.log with -term)")
	flag.Parse()

	logPath := *logFlag
	if logPath == "" && *termFlag {
		logPath = "typingtext.log"
	}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer func() { _ = f.Close() }()
		log.SetOutput(f)
	}

	assets, err := openAssets(*assetsFlag)
	if err != nil {
		log.Fatalf("Failed to open assets: %v", err)
	}
	cfg, err := config.NewFSLoader(assets, *assetsFlag).LoadHost()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *libraryFlag != "" {
		cfg.Reload.Library = *libraryFlag
	}

	opts := sessionOptions{
		Seed:   *seedFlag,
		Record: *recordFlag,
		Replay: *replayFlag,
		Opener: hotreload.PluginOpener{},
		Output: log.Writer(),
	}

	if *termFlag {
		err = runTerminal(cfg, assets, opts)
	} else {
		err = runWindow(cfg, assets, opts)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// openAssets returns the embedded configs, or dir when set
func openAssets(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(configFS, "configs")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}
