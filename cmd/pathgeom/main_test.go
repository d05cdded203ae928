package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/pathgeom"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFlatten(t *testing.T) {
	out, err := run(t, "", "flatten", "M0,0 L10,0 L10,10 Z M20,20 L21,21")
	require.NoError(t, err)
	assert.Equal(t, "0 0\n10 0\n10 10\n0 0\n\n20 20\n21 21\n", out)

	out, err = run(t, "M0,0 L1,1\n", "flatten")
	require.NoError(t, err)
	assert.Equal(t, "0 0\n1 1\n", out)

	out, err = run(t, "", "--fixed", "flatten", "M0,0 L1.5,-2")
	require.NoError(t, err)
	assert.Equal(t, "0 0\n96 -128\n", out)
}

func TestFlattenInvalidPath(t *testing.T) {
	_, err := run(t, "", "flatten", "L0,0")
	assert.ErrorIs(t, err, pathgeom.ErrInvalidPath)
}

func TestSketch(t *testing.T) {
	args := []string{"sketch", "--seed", "3", "--precision", "2", "M0,0 L100,0 L100,100 Z"}
	a, err := run(t, "", args...)
	require.NoError(t, err)
	b, err := run(t, "", args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	g, err := pathgeom.Parse(strings.TrimSpace(a))
	require.NoError(t, err)
	require.Len(t, g.Figures, 1)
	assert.True(t, g.Figures[0].Closed)
}

func TestMarch(t *testing.T) {
	out, err := run(t, "", "march", "--step", "5", "M0,0 L10,0")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"CompleteStep 0 0 0 1 0",
		"CompleteStep 5 0 0 1 5",
		"CompleteStep 10 0 0 1 10",
		"CompletePolyline 10 0 0 1 10",
		"",
	}, "\n"), out)

	_, err = run(t, "", "march", "--step", "0", "M0,0 L10,0")
	assert.ErrorContains(t, err, "step must be positive")
}

// failingWriter fails the nth write and accepts all others.
type failingWriter struct {
	n, calls int
}

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(b []byte) (int, error) {
	w.calls++
	if w.calls == w.n {
		return 0, errWrite
	}
	return len(b), nil
}

func TestMarchFigures(t *testing.T) {
	out, err := run(t, "", "march", "--step", "10", "M0,0 L10,0 M0,5 L10,5")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"CompleteStep 0 0 0 1 0",
		"CompleteStep 10 0 0 1 10",
		"CompletePolyline 10 0 0 1 10",
		"",
		"CompleteStep 0 5 0 1 0",
		"CompleteStep 10 5 0 1 10",
		"CompletePolyline 10 5 0 1 10",
		"",
	}, "\n"), out)

	// The fourth write is the blank line between the two figures.
	cmd := newRootCmd()
	cmd.SetOut(&failingWriter{n: 4})
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"march", "--step", "10", "M0,0 L10,0 M0,5 L10,5"})
	assert.ErrorIs(t, cmd.Execute(), errWrite)
}

func TestPolygon(t *testing.T) {
	out, err := run(t, "", "polygon", "--points", "4", "--precision", "3")
	require.NoError(t, err)
	assert.Equal(t, "M50,0 L100,50 50,100 0,50 Z\n", out)

	out, err = run(t, "", "polygon", "--points", "4", "--effect", "Sketch", "--seed", "1")
	require.NoError(t, err)
	assert.NotEqual(t, "M50,0 L100,50 50,100 0,50 Z\n", out)

	_, err = run(t, "", "polygon", "--effect", "Wobble")
	assert.ErrorContains(t, err, "unknown effect")

	_, err = run(t, "", "polygon", "--stretch", "sideways")
	assert.ErrorContains(t, err, "unknown stretch")
}

func TestArc(t *testing.T) {
	out, err := run(t, "", "arc", "0", "0", "5", "5", "0", "0", "1", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "ArcNone\n", out)

	out, err = run(t, "", "arc", "0", "0", "0", "5", "0", "false", "true", "10", "0")
	require.NoError(t, err)
	assert.Equal(t, "ArcLine\n10 0\n", out)

	_, err = run(t, "", "arc", "0", "0", "5", "5", "0", "maybe", "1", "10", "0")
	assert.ErrorContains(t, err, "large-arc")
}

func TestConfigFlag(t *testing.T) {
	_, err := run(t, "", "--config", "/nonexistent/pathgeom.toml", "flatten", "M0,0")
	assert.ErrorContains(t, err, "reading config")
}
