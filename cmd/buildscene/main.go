// Command buildscene builds the typing text scene plugin so that a running
// host can load it as a new version:
//
//	go run ./cmd/buildscene
//
// Every run produces a plugin with its own package path. A plain
// `go build -buildmode=plugin ./plugins/typingtext` loads once and is then
// refused by the runtime as already loaded.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/younwookim/gamesnippets/internal/infrastructure/scenebuild"
)

func main() {
	outFlag := flag.String("o", "bin/typingtext.so", "Plugin output path (the host's reload.library)")
	pkgFlag := flag.String("pkg", "plugins/typingtext", "Scene package directory, relative to -module")
	moduleFlag := flag.String("module", ".", "Module root")
	flagsFlag := flag.String("goflags", "", "Extra go build flags, space separated (must match the host build, e.g. -race)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, err := scenebuild.Build(ctx, scenebuild.Options{
		ModuleDir: *moduleFlag,
		Package:   *pkgFlag,
		Output:    *outFlag,
		Stamp:     strconv.FormatInt(start.UnixNano(), 10),
		Flags:     strings.Fields(*flagsFlag),
	})
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	log.Printf("Built %s (%s) in %s", res.Output, humanize.Bytes(uint64(res.Size)), time.Since(start).Round(time.Millisecond))
}
