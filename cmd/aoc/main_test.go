package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDays_RegistryComplete(t *testing.T) {
	require.Len(t, days, 20)
	for n := 1; n <= 20; n++ {
		d, ok := days[n]
		require.True(t, ok, "day %d missing", n)
		assert.NotEmpty(t, d.name, "day %d", n)
		assert.NotNil(t, d.part1, "day %d part1", n)
		assert.NotNil(t, d.part2, "day %d part2", n)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_InputOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day15.txt")
	require.NoError(t, os.WriteFile(path, []byte("rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7\n"), 0o644))

	out, err := execute(t, "run", "15", "--input", path)
	require.NoError(t, err)
	assert.Contains(t, out, "part1=1320")
	assert.Contains(t, out, "part2=145")
}

func TestRun_InputDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day06.txt"),
		[]byte("Time:      7  15   30\nDistance:  9  40  200\n"), 0o644))

	out, err := execute(t, "--dir", dir, "run", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "part1=288")
	assert.Contains(t, out, "part2=71503")
}

func TestRun_UnknownDay(t *testing.T) {
	_, err := execute(t, "run", "25")
	assert.ErrorContains(t, err, "no solver for day 25")

	_, err = execute(t, "run", "six")
	assert.ErrorContains(t, err, "day must be a number")
}

func TestRun_MissingInput(t *testing.T) {
	_, err := execute(t, "--dir", t.TempDir(), "run", "1")
	assert.ErrorContains(t, err, "read input for day 1")
}
