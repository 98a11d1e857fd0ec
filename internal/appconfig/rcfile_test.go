package appconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRCFileYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("PreviewCommand: cat {}\nHeaderLines:\n  - hello\n"), 0o644))

	rc, err := LoadRCFile(path)
	require.NoError(t, err)
	require.Equal(t, "cat {}", rc.PreviewCommand)
	require.Equal(t, []string{"hello"}, rc.HeaderLines)
}

func TestLoadRCFileJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Delimiter": ","}`), 0o644))

	rc, err := LoadRCFile(path)
	require.NoError(t, err)
	require.Equal(t, ",", rc.Delimiter)
}

func TestRCFileApplyDoesNotOverrideZeroValues(t *testing.T) {
	t.Parallel()

	cfg := New()
	rc := &RCFile{}
	rc.Apply(cfg)
	require.Equal(t, DefaultDelimiterPattern, cfg.Delimiter.String())
}

func TestRCFileApplyAppliesPreviewWindow(t *testing.T) {
	t.Parallel()

	cfg := New()
	rc := &RCFile{PreviewWindow: "up:30%"}
	rc.Apply(cfg)
	require.Equal(t, DirectionUp, cfg.PreviewWindow.Direction)
}

func TestLocateRCFileFindsKnownFilenames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("{}"), 0o644))

	path, err := LocateRCFile(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "config.yml"), path)
}

func TestLocateRCFileErrorsWhenMissing(t *testing.T) {
	t.Parallel()

	_, err := LocateRCFile(t.TempDir())
	require.Error(t, err)
}
