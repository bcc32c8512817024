package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiresSubcommands(t *testing.T) {
	root := NewRootCmd()
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["op"])
	assert.True(t, names["dc"])
	assert.True(t, names["ac"])
	assert.True(t, names["tran"])
}

func TestOPCommandHonorsMaximumIterationsFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circuit.cir")
	require.NoError(t, os.WriteFile(path, []byte("* divider\nV1 in 0 DC 1\nR1 in out 1k\nR2 out 0 2k\n"), 0o644))

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"op", path, "--maximum-iterations=5"})

	require.NoError(t, root.Execute())
}
