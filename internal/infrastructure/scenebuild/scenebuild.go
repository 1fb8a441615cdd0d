// Package scenebuild compiles a scene package into a Go plugin that the
// host can load next to every earlier build.
//
// The runtime refuses to open a second plugin with the same package path.
// `go build -buildmode=plugin ./pkg` always uses the import path, and a
// hand-set -pluginpath no longer matches the symbol names the compiler
// emitted. Building the package from a list of files makes the go command
// derive the path from the file contents, so each build gets its own copy
// of the sources plus a stamp file.
package scenebuild

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoSources is returned when the package directory has no Go files to build
var ErrNoSources = errors.New("no go source files")

// Options describes one plugin build
type Options struct {
	ModuleDir string   // module root; the go command runs here
	Package   string   // scene package directory, relative to ModuleDir
	Output    string   // plugin file; replaced atomically
	Stamp     string   // unique per build, e.g. a timestamp
	Flags     []string // extra go build flags, e.g. -race
	GoBin     string   // go command, "go" when empty
}

// Result reports what a build produced
type Result struct {
	Output string
	Size   int64
}

// Build copies the package into a scratch directory inside the module,
// adds a stamp file and builds it as a plugin.
func Build(ctx context.Context, opts Options) (*Result, error) {
	if opts.GoBin == "" {
		opts.GoBin = "go"
	}
	if opts.Stamp == "" {
		return nil, fmt.Errorf("build stamp is required")
	}

	// The go command runs in the module root, so every path it sees is absolute
	moduleDir, err := filepath.Abs(opts.ModuleDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve module dir: %w", err)
	}

	srcDir := filepath.Join(moduleDir, opts.Package)
	sources, err := listSources(srcDir)
	if err != nil {
		return nil, err
	}

	scratchRoot := filepath.Join(moduleDir, "build")
	if err := os.MkdirAll(scratchRoot, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create build dir: %w", err)
	}
	scratch, err := os.MkdirTemp(scratchRoot, "scene-")
	if err != nil {
		return nil, fmt.Errorf("failed to create build dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(scratch) }()

	var files []string
	for _, name := range sources {
		dst := filepath.Join(scratch, name)
		if err := copySource(filepath.Join(srcDir, name), dst); err != nil {
			return nil, err
		}
		files = append(files, dst)
	}
	stampFile := filepath.Join(scratch, "zz_buildstamp.go")
	if err := os.WriteFile(stampFile, []byte(stampSource(opts.Stamp)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write stamp: %w", err)
	}
	files = append(files, stampFile)

	output, err := filepath.Abs(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	// The host polls the output, so it must never see a half written file
	tmp := output + ".building"
	args := append([]string{"build", "-buildmode=plugin"}, opts.Flags...)
	args = append(args, "-o", tmp)
	args = append(args, files...)

	cmd := exec.CommandContext(ctx, opts.GoBin, args...)
	cmd.Dir = moduleDir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		_ = os.Remove(tmp)
		return nil, fmt.Errorf("go build failed: %w\n%s", err, strings.TrimSpace(out.String()))
	}

	info, err := os.Stat(tmp)
	if err != nil {
		return nil, fmt.Errorf("failed to stat build output: %w", err)
	}
	if err := os.Rename(tmp, output); err != nil {
		_ = os.Remove(tmp)
		return nil, fmt.Errorf("failed to install %s: %w", output, err)
	}
	return &Result{Output: output, Size: info.Size()}, nil
}

// listSources returns the non-test Go files of dir
func listSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSources, dir)
	}
	return names, nil
}

func stampSource(stamp string) string {
	return fmt.Sprintf("// Code generated by scenebuild. DO NOT EDIT.\n\npackage main\n\nconst buildStamp = %q\n", stamp)
}

func copySource(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Close()
}
