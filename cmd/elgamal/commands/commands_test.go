package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cfgFile = ""
	root := newRoot()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	require.NoError(t, root.Execute(), errOut.String())
	return out.String()
}

func TestParamsCommand(t *testing.T) {
	out := execute(t, "params", "--bits", "64", "--home", t.TempDir(), "--log-level", "warn")
	assert.Contains(t, out, "bits:        64")
	assert.Contains(t, out, "safe prime:  true")
	assert.Contains(t, out, "fingerprint:")
}

func TestRunThenShow(t *testing.T) {
	home := t.TempDir()

	out := execute(t, "show", "--home", home)
	assert.Contains(t, out, "No reports stored.")

	out = execute(t, "run", "--bits", "288", "--home", home, "--log-level", "warn")
	assert.Contains(t, out, "digest matches:      true")
	assert.Contains(t, out, "signature valid:     true")
	assert.Contains(t, out, "corrupted rejected:  true")
	assert.Contains(t, out, "legacy corrupted:")

	id := strings.TrimSpace(execute(t, "show", "--home", home))
	require.Len(t, id, 36)

	out = execute(t, "show", id, "--home", home)
	assert.Contains(t, out, "run "+id)

	out = execute(t, "show", id, "--dump", "--home", home)
	assert.Contains(t, out, "DigestMatches: (bool) true")
}

func TestSweepCommand(t *testing.T) {
	out := execute(t, "sweep", "--from", "264", "--to", "328", "--step", "64",
		"--workers", "2", "--save=false", "--home", t.TempDir(), "--log-level", "warn")
	assert.Contains(t, out, "planned 2, completed 2, failed 0, skipped 0")
}

func TestParamsCommand_PlainPrime(t *testing.T) {
	out := execute(t, "params", "--bits", "128", "--safe=false", "--home", t.TempDir(), "--log-level", "warn")
	assert.Contains(t, out, "bits:        128")
	assert.Contains(t, out, "safe prime:")
}
