package resultio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospice/gospice/pkg/mna"
)

func TestWriteCSVPinsTimeColumnFirst(t *testing.T) {
	solutions := []mna.Solution{
		{mna.TimeKey: 0, "V(out)": 1.0, "V(in)": 2.0},
		{mna.TimeKey: 1e-3, "V(out)": 1.5, "V(in)": 2.0},
	}

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, solutions))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "time,V(in),V(out)", lines[0])
}

func TestWriteCSVUnionsColumnsAcrossRows(t *testing.T) {
	solutions := []mna.Solution{
		{"V(a)": 1.0},
		{"V(b)": 2.0},
	}

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, solutions))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "V(a),V(b)", lines[0])
	assert.Equal(t, "1,", lines[1])
	assert.Equal(t, ",2", lines[2])
}

func TestWriteCSVEmptySolutionsWritesOnlyHeader(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, nil))
	assert.Equal(t, "\n", sb.String())
}
