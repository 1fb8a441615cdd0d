package scenebuild

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("package main\n"), 0o644))
	}
}

func TestListSources(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "main.go", "scene.go", "scene_test.go", "notes.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.go"), 0o755))

	names, err := listSources(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go", "scene.go"}, names)
}

func TestListSources_Empty(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "only_test.go")

	_, err := listSources(dir)
	assert.ErrorIs(t, err, ErrNoSources)

	_, err = listSources(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestStampSource(t *testing.T) {
	src := stampSource(`12"34`)
	f, err := parser.ParseFile(token.NewFileSet(), "stamp.go", src, 0)
	require.NoError(t, err)
	assert.Equal(t, "main", f.Name.Name)
	assert.Contains(t, src, `const buildStamp = "12\"34"`)
	assert.NotEqual(t, stampSource("1"), stampSource("2"))
}

func TestBuild_RequiresStamp(t *testing.T) {
	_, err := Build(context.Background(), Options{ModuleDir: t.TempDir(), Package: "p", Output: "x.so"})
	assert.Error(t, err)
}

func TestBuild_FailedCompileCleansUp(t *testing.T) {
	module := t.TempDir()
	writeFiles(t, filepath.Join(module, "plugins", "scene"), "main.go")
	output := filepath.Join(module, "bin", "scene.so")

	_, err := Build(context.Background(), Options{
		ModuleDir: module,
		Package:   filepath.Join("plugins", "scene"),
		Output:    output,
		Stamp:     "1",
		GoBin:     filepath.Join(module, "no-such-go"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "go build failed")

	assert.NoFileExists(t, output)
	assert.NoFileExists(t, output+".building")
	entries, err := os.ReadDir(filepath.Join(module, "build"))
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch copies are removed")
}
