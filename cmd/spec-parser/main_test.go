package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/spec-parser/internal/config"
)

// withCLI resets the global flag struct around a test.
func withCLI(t *testing.T, configure func()) {
	t.Helper()
	prev := CLI
	t.Cleanup(func() { CLI = prev })
	CLI.InputDir = ""
	CLI.Debug = false
	CLI.Force = false
	CLI.Verbose = false
	CLI.NoOutput = false
	CLI.Output = ""
	CLI.GenerateJsondump = false
	CLI.OutputJsondump = ""
	CLI.GenerateMkdocs = false
	CLI.OutputMkdocs = ""
	CLI.GeneratePlantuml = false
	CLI.OutputPlantuml = ""
	CLI.GenerateRdf = false
	CLI.OutputRdf = ""
	CLI.GenerateTex = false
	CLI.OutputTex = ""
	CLI.GenerateWebpages = false
	CLI.OutputWebpages = ""
	configure()
}

func makeModelDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "model")
	require.NoError(t, os.Mkdir(dir, 0o750))
	return dir
}

func TestRunCreatesDirsForSelectedFormats(t *testing.T) {
	model := makeModelDir(t)
	out := filepath.Join(t.TempDir(), "build")

	// Everything except tex, which would additionally require pandoc on PATH.
	withCLI(t, func() {
		CLI.InputDir = model
		CLI.Output = out
		CLI.GenerateJsondump = true
		CLI.GenerateMkdocs = true
		CLI.GeneratePlantuml = true
		CLI.GenerateRdf = true
		CLI.GenerateWebpages = true
	})

	assert.Equal(t, 0, run())

	for _, name := range []string{"jsondump", "mkdocs", "plantuml", "rdf", "webpages"} {
		info, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err, "expected directory for %s", name)
		assert.True(t, info.IsDir())
	}

	// tex was not requested: no directory, no pandoc requirement.
	_, err := os.Stat(filepath.Join(out, "tex"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunFailsOnMisnamedInputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "spec")
	require.NoError(t, os.Mkdir(dir, 0o750))

	withCLI(t, func() {
		CLI.InputDir = dir
		CLI.Output = filepath.Join(t.TempDir(), "build")
	})

	assert.Equal(t, 1, run())
}

func TestRunFailsWhenOutputExistsWithoutForce(t *testing.T) {
	model := makeModelDir(t)
	existing := filepath.Join(t.TempDir(), "docs")
	require.NoError(t, os.Mkdir(existing, 0o750))
	marker := filepath.Join(existing, "keep.txt")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o600))

	withCLI(t, func() {
		CLI.InputDir = model
		CLI.GenerateMkdocs = true
		CLI.OutputMkdocs = existing
	})

	assert.Equal(t, 1, run())

	// Existing content must be untouched on failure.
	_, err := os.Stat(marker)
	assert.NoError(t, err)
}

func TestRunForceRecreatesExistingOutput(t *testing.T) {
	model := makeModelDir(t)
	existing := filepath.Join(t.TempDir(), "docs")
	require.NoError(t, os.Mkdir(existing, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(existing, "stale.txt"), []byte("x"), 0o600))

	withCLI(t, func() {
		CLI.InputDir = model
		CLI.Force = true
		CLI.GenerateMkdocs = true
		CLI.OutputMkdocs = existing
	})

	assert.Equal(t, 0, run())

	entries, err := os.ReadDir(existing)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// writeDefaultsFile writes a spec-parser.yaml and points SPEC_PARSER_CONFIG at it.
func writeDefaultsFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec-parser.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(config.EnvConfigPath, path)
}

func TestRunUsesOutputDirectoryFromDefaultsFile(t *testing.T) {
	model := makeModelDir(t)
	out := filepath.Join(t.TempDir(), "build")
	writeDefaultsFile(t, "output:\n  directory: \""+out+"\"\n")

	withCLI(t, func() {
		CLI.InputDir = model
		CLI.GenerateRdf = true
	})

	assert.Equal(t, 0, run())

	info, err := os.Stat(filepath.Join(out, "rdf"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRunOutputFlagWinsOverDefaultsFile(t *testing.T) {
	model := makeModelDir(t)
	tmp := t.TempDir()
	fromFile := filepath.Join(tmp, "from-file")
	fromFlag := filepath.Join(tmp, "from-flag")
	writeDefaultsFile(t, "output:\n  directory: \""+fromFile+"\"\n")

	withCLI(t, func() {
		CLI.InputDir = model
		CLI.Output = fromFlag
		CLI.GenerateRdf = true
	})

	assert.Equal(t, 0, run())

	info, err := os.Stat(filepath.Join(fromFlag, "rdf"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// The file's directory must not be touched when the flag is set.
	_, err = os.Stat(fromFile)
	assert.True(t, os.IsNotExist(err))
}

func TestRunForceFromDefaultsFile(t *testing.T) {
	model := makeModelDir(t)
	existing := filepath.Join(t.TempDir(), "docs")
	require.NoError(t, os.Mkdir(existing, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(existing, "stale.txt"), []byte("x"), 0o600))
	writeDefaultsFile(t, "output:\n  force: true\n")

	// No -f on the command line: force comes from the defaults file alone.
	withCLI(t, func() {
		CLI.InputDir = model
		CLI.GenerateMkdocs = true
		CLI.OutputMkdocs = existing
	})

	assert.Equal(t, 0, run())

	entries, err := os.ReadDir(existing)
	require.NoError(t, err)
	assert.Empty(t, entries, "existing directory should be recreated empty")
}

func TestRunNoOutputCreatesNothing(t *testing.T) {
	model := makeModelDir(t)
	out := filepath.Join(t.TempDir(), "build")

	withCLI(t, func() {
		CLI.InputDir = model
		CLI.NoOutput = true
		CLI.GenerateRdf = true
	})

	assert.Equal(t, 0, run())

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}
