package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/amazeing/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadKeyValue(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, "maze.conf", `
WIDTH=10
HEIGHT=8
ENTRY=0,0
EXIT=7,9
SEED=42
ALGORITHM=prim
PERFECT=false
PATTERN=true
OUTPUT_FILE=out.txt
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 10, cfg.Width)
		assert.Equal(t, 8, cfg.Height)
		assert.Equal(t, &Point{Row: 0, Col: 0}, cfg.Entry)
		assert.Equal(t, &Point{Row: 7, Col: 9}, cfg.Exit)
		require.NotNil(t, cfg.Seed)
		assert.Equal(t, int64(42), *cfg.Seed)
		assert.Equal(t, "prim", cfg.Algorithm)
		assert.False(t, cfg.Perfect)
		assert.True(t, cfg.Pattern)
		assert.Equal(t, "out.txt", cfg.OutputFile)
	})

	t.Run("defaults", func(t *testing.T) {
		path := writeConfig(t, "maze.conf", "WIDTH=5\nHEIGHT=4\n")
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Nil(t, cfg.Entry)
		assert.Nil(t, cfg.Exit)
		assert.Nil(t, cfg.Seed)
		assert.Equal(t, "backtracker", cfg.Algorithm)
		assert.True(t, cfg.Perfect)
		assert.False(t, cfg.Pattern)
		assert.Equal(t, "maze.txt", cfg.OutputFile)
	})

	t.Run("unrecognized keys are ignored", func(t *testing.T) {
		path := writeConfig(t, "maze.conf", "WIDTH=5\nHEIGHT=4\nCOLOR=red\n")
		_, err := Load(path)
		assert.NoError(t, err)
	})

	t.Run("original algorithm spellings", func(t *testing.T) {
		for spelling, want := range map[string]string{
			"backtracking": string(maze.Backtracker),
			"prims":        string(maze.Prim),
			"PRIM":         string(maze.Prim),
		} {
			path := writeConfig(t, "maze.conf", "WIDTH=5\nHEIGHT=4\nALGORITHM="+spelling+"\n")
			cfg, err := Load(path)
			require.NoError(t, err, spelling)
			assert.Equal(t, want, cfg.Algorithm)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.conf"))
		assert.Error(t, err)
	})
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "maze.yaml", `
width: 6
height: 7
entry: 0,1
exit: 6,5
seed: 9
algorithm: prim
perfect: false
output_file: maze.hex
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Width)
	assert.Equal(t, 7, cfg.Height)
	assert.Equal(t, &Point{Row: 0, Col: 1}, cfg.Entry)
	assert.Equal(t, &Point{Row: 6, Col: 5}, cfg.Exit)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(9), *cfg.Seed)
	assert.Equal(t, "prim", cfg.Algorithm)
	assert.False(t, cfg.Perfect)
	assert.Equal(t, "maze.hex", cfg.OutputFile)
}

func TestValidation(t *testing.T) {
	cases := map[string]string{
		"missing width":       "HEIGHT=5\n",
		"missing height":      "WIDTH=5\n",
		"dimension too small": "WIDTH=1\nHEIGHT=5\n",
		"width not a number":  "WIDTH=abc\nHEIGHT=5\n",
		"entry out of bounds": "WIDTH=5\nHEIGHT=5\nENTRY=5,0\n",
		"exit out of bounds":  "WIDTH=5\nHEIGHT=5\nEXIT=0,9\n",
		"entry equals exit":   "WIDTH=5\nHEIGHT=5\nENTRY=2,2\nEXIT=2,2\n",
		"entry bad format":    "WIDTH=5\nHEIGHT=5\nENTRY=1\n",
		"unknown algorithm":   "WIDTH=5\nHEIGHT=5\nALGORITHM=kruskal\n",
		"bad perfect flag":    "WIDTH=5\nHEIGHT=5\nPERFECT=maybe\n",
		"bad seed":            "WIDTH=5\nHEIGHT=5\nSEED=abc\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, "maze.conf", content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	t.Run("exit equals defaulted entry", func(t *testing.T) {
		path := writeConfig(t, "maze.conf", "WIDTH=5\nHEIGHT=5\nEXIT=0,0\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestOptions(t *testing.T) {
	path := writeConfig(t, "maze.conf", "WIDTH=9\nHEIGHT=6\nENTRY=0,0\nEXIT=5,8\nSEED=3\nALGORITHM=prim\nPERFECT=false\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	opts := cfg.Options()
	assert.Equal(t, 9, opts.Width)
	assert.Equal(t, 6, opts.Height)
	assert.Equal(t, maze.Prim, opts.Algorithm)
	assert.Equal(t, &maze.CellPosition{Row: 0, Col: 0}, opts.Entrance)
	assert.Equal(t, &maze.CellPosition{Row: 5, Col: 8}, opts.Exit)
	require.NotNil(t, opts.Seed)
	assert.Equal(t, int64(3), *opts.Seed)
	assert.False(t, opts.Perfect)

	// The options feed straight into the core.
	m, err := maze.Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, maze.CellPosition{Row: 5, Col: 8}, m.Exit)
}
