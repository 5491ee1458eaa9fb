package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lanternfish/aoc2024"
	"github.com/lanternfish/aoc2024/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	newLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEveryPuzzleHasASample(t *testing.T) {
	samples, err := aoc.ExtractSamples(puzzleSrc)
	require.NoError(t, err)
	reg := aoc.Default()
	for _, d := range reg.Days() {
		for _, p := range reg.Parts(d) {
			s, ok := samples[p.Name]
			if !assert.True(t, ok, "no sample for %s", p.Name) {
				continue
			}
			got := fmt.Sprint(p.Solve(aoc.TrimInput(s.Input)))
			assert.Equal(t, s.Want, got, "%s sample", p.Name)
		}
	}
}

// writeSetup creates an offline config whose input directory holds the
// samples as the real inputs.
func writeSetup(t *testing.T) string {
	t.Helper()
	t.Setenv("AOC_SESSION", "")
	t.Setenv("AOC_INPUT_DIR", "")
	t.Setenv("AOC_YEAR", "")
	dir := t.TempDir()
	samples, err := aoc.ExtractSamples(puzzleSrc)
	require.NoError(t, err)
	for _, name := range []string{"day1p1", "day5p1"} {
		p, ok := aoc.Default().Lookup(name)
		require.True(t, ok)
		path := filepath.Join(dir, "inputs", fmt.Sprintf("%d.input", p.Day))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(samples[name].Input), 0644))
	}
	cfg := config.DefaultConfig()
	cfg.InputDir = filepath.Join(dir, "inputs")
	cfg.Fetch = false
	path := filepath.Join(dir, "aoc.yaml")
	require.NoError(t, cfg.Save(path))
	return path
}

func TestRun(t *testing.T) {
	cfgPath := writeSetup(t)
	out, err := execute(t, "run", "--config", cfgPath, "5", "1")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Day 1 Part 1 result: 11",
		"Day 1 Part 2 result: 31",
		"Day 5 Part 1 result: 143",
		"Day 5 Part 2 result: 123",
		"",
	}, "\n"), out)
}

func TestRun_MissingInputOffline(t *testing.T) {
	cfgPath := writeSetup(t)
	_, err := execute(t, "run", "--config", cfgPath, "--offline", "4")
	require.Error(t, err)
	assert.ErrorIs(t, err, aoc.ErrOffline)
}

func TestRun_BadDay(t *testing.T) {
	_, err := execute(t, "run", "twelve")
	assert.ErrorContains(t, err, `bad day "twelve"`)
	_, err = execute(t, "run", "26")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 16)
	assert.Contains(t, out, "day6p1   day  6 part 1  sample want=41")
}

func TestVerbosePerExecution(t *testing.T) {
	var got []bool
	run := func(args ...string) {
		logger = nil
		newLogger = func(verbose bool) (*zap.Logger, error) {
			got = append(got, verbose)
			return zap.NewNop(), nil
		}
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
	}
	run("list")
	run("list", "--verbose")
	run("list")
	assert.Equal(t, []bool{false, true, false}, got)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	_, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2024, cfg.Year)
}
