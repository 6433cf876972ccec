package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/junction/internal/config"
	"github.com/katalvlaran/junction/point"
)

const lineInput = "0,0,0\n1,0,0\n10,0,0\n11,0,0\n"

func noEnv(string) (string, bool) { return "", false }

func writeInput(t *testing.T, body string) (in, out string) {
	t.Helper()
	dir := t.TempDir()
	in = filepath.Join(dir, "input.txt")
	out = filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(in, []byte(body), 0o600))

	return in, out
}

func TestRun_Parts(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		extra []string
		want  string
	}{
		{"part 1", lineInput, []string{"-p", "1", "-edges", "3"}, "4"},
		{"part 1 two links", lineInput, []string{"-edges", "2", "-workers", "2"}, "4"},
		{"part 2", lineInput, []string{"-p", "2"}, "10"},
		{"part 2 single point", "5,5,5\n", []string{"-p", "2"}, "0"},
		{"part 1 empty", "", []string{"-p", "1"}, "1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, out := writeInput(t, tc.body)
			var stdout bytes.Buffer
			args := append([]string{"-i", in, "-o", out}, tc.extra...)
			require.NoError(t, run(args, noEnv, &stdout, io.Discard))

			got, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
			assert.Equal(t, "Successfully determined solution "+in+" -> "+out+"\n", stdout.String())
		})
	}
}

func TestRun_EnvEdges(t *testing.T) {
	in, out := writeInput(t, lineInput)
	env := func(k string) (string, bool) {
		if k == config.EnvEdges {
			return "2", true
		}
		return "", false
	}
	require.NoError(t, run([]string{"-i", in, "-o", out}, env, io.Discard, io.Discard))
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "4", string(got)) // two circuits of size 2
}

func TestRun_Errors(t *testing.T) {
	in, out := writeInput(t, "1,2,3\n1,2\n")
	err := run([]string{"-i", in, "-o", out}, noEnv, io.Discard, io.Discard)
	assert.ErrorIs(t, err, point.ErrFieldCount)
	assert.NoFileExists(t, out)

	err = run([]string{"-i", filepath.Join(t.TempDir(), "missing.txt")}, noEnv, io.Discard, io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = run([]string{"-i", in, "-p", "7"}, noEnv, io.Discard, io.Discard)
	assert.ErrorIs(t, err, config.ErrPart)
}

func TestSolve_UnknownPart(t *testing.T) {
	_, err := solve(nil, config.Config{Part: 9})
	assert.ErrorIs(t, err, config.ErrPart)
}
