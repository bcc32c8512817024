package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospice/gospice/pkg/mna"
)

func TestVoltageSourceDCStampsBranchAndRHS(t *testing.T) {
	v := NewVoltageSource("V1", []string{"in", "0"}, Waveform{Kind: DC, DCValue: 5.0})
	idx := indexWithBranch(mna.Current("V1"), "in")
	b, _ := idx.Index(mna.Current("V1"))

	g := v.StampGDC(idx, mna.Solution{})
	require.NotEmpty(t, g)

	rhs := v.StampBDC(idx, mna.Solution{})
	require.Len(t, rhs, 1)
	assert.Equal(t, b, rhs[0].Row)
	assert.Equal(t, 5.0, rhs[0].Value)
}

func TestVoltageSourceTranUsesWaveformAtTime(t *testing.T) {
	v := NewVoltageSource("V1", []string{"in", "0"}, Waveform{Kind: SIN, Amplitude: 1, Freq: 1000})
	idx := indexWithBranch(mna.Current("V1"), "in")

	sol := mna.Solution{mna.TimeKey: 0.25 / 1000.0}
	rhs := v.StampBTran(idx, sol, mna.Solution{}, 1e-6)
	require.Len(t, rhs, 1)
	assert.InDelta(t, 1.0, rhs[0].Value, 1e-6)
}

func TestVoltageSourceACUsesPhasor(t *testing.T) {
	v := NewVoltageSource("V1", []string{"in", "0"}, Waveform{ACMagnitude: 1, ACPhaseDeg: 0})
	idx := indexWithBranch(mna.Current("V1"), "in")

	rhs := v.StampBAC(idx, mna.Solution{}, 1e3)
	require.Len(t, rhs, 1)
	assert.Equal(t, complex(1, 0), rhs[0].Value)
}
