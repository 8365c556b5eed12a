package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntauth/lexorank"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	assert := assert.New(t)

	cmd := newRootCmd()
	assert.Equal("lexorank", cmd.Use)
	assert.NotEmpty(cmd.Short)

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, name := range []string{"parse", "next", "prev", "between", "spread", "rotate", "float"} {
		assert.Contains(names, name)
	}
}

func TestCommands(t *testing.T) {
	assert := assert.New(t)

	test := func(exp string, args ...string) {
		out, _, err := run(t, args...)
		require.NoError(t, err, strings.Join(args, " "))
		assert.Equal(exp, out, strings.Join(args, " "))
	}

	test("bucket: 0\nrank:   2a\n", "parse", "0|2a")
	test("0|z1\n", "next", "0|z")
	test("z1\n", "next", "0|z", "--rank-only")
	test("1|9\n", "prev", "1|a")
	test("0|11\n", "between", "0|1", "0|2")
	test("0|11\n", "between", "0|2", "0|1")
	test("0|11\n0|2\n0|21\n", "spread", "0|1", "0|3", "--count", "3")
	test("0|abc\n", "rotate", "2|abc")
	test("1|abc\n", "rotate", "2|abc", "--backward")
	test("0.5\n", "float", "0|i")
}

func TestCommandErrors(t *testing.T) {
	assert := assert.New(t)

	_, _, err := run(t, "parse", "4|abc")
	assert.ErrorIs(err, lexorank.ErrInvalidBucket)

	_, _, err = run(t, "next", "0|a0")
	assert.ErrorIs(err, lexorank.ErrInvalidRank)

	_, _, err = run(t, "between", "0|a", "abc")
	assert.ErrorIs(err, lexorank.ErrInvalidFormat)

	_, _, err = run(t, "between", "0|a", "0|a")
	assert.ErrorIs(err, errNothingBetween)

	_, _, err = run(t, "spread", "1|z", "1|z", "-n", "2")
	assert.ErrorIs(err, errNothingBetween)

	_, _, err = run(t, "next")
	assert.Error(err)

	_, _, err = run(t, "next", "0|1", "--log-level", "loud")
	assert.EqualError(err, `unsupported log level "loud"`)

	_, _, err = run(t, "next", "0|1", "--log-format", "xml")
	assert.EqualError(err, `unsupported log format "xml"`)
}

func TestLogging(t *testing.T) {
	assert := assert.New(t)

	out, logs, err := run(t, "next", "0|1", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal("0|2\n", out)
	assert.Contains(logs, "Computed successor.")
	assert.Contains(logs, "output=0|2")

	_, logs, err = run(t, "between", "0|1", "1|3", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(logs, `"msg":"Combining ranks from different buckets."`)
	assert.Contains(logs, `"resultBucket":0`)

	_, logs, err = run(t, "next", "0|1")
	require.NoError(t, err)
	assert.Empty(logs)
}
