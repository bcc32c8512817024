package device

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gospice/gospice/internal/consts"
	"github.com/gospice/gospice/pkg/mna"
)

func TestDiodeLinearizeAtZeroBias(t *testing.T) {
	d := NewDiode("D1", []string{"a", "0"}, 1e-14, 1.0)
	id, gd := d.linearize(0)

	assert.InDelta(t, 0, id, 1e-20)
	assert.Greater(t, gd, 0.0)
}

func TestDiodeForwardConductionIncreasesCurrent(t *testing.T) {
	d := NewDiode("D1", []string{"a", "0"}, 1e-14, 1.0)
	idLow, _ := d.linearize(0.3)
	idHigh, _ := d.linearize(0.6)

	assert.Greater(t, idHigh, idLow)
}

func TestDiodeJunctionVoltageSeedsForwardBias(t *testing.T) {
	d := NewDiode("D1", []string{"a", "0"}, 1e-14, 1.0)
	vd := d.junctionVoltage(mna.Solution{})
	assert.Greater(t, vd, 0.0)
}

func TestDiodeIsNonlinear(t *testing.T) {
	d := NewDiode("D1", []string{"a", "0"}, 1e-14, 1.0)
	assert.False(t, d.IsLinear())
}

func TestDiodeStampGDCUpdatesPrevVd(t *testing.T) {
	d := NewDiode("D1", []string{"a", "0"}, 1e-14, 1.0)
	idx := newIndex("a")

	assert.Equal(t, 0.0, d.prevVd)
	d.StampGDC(idx, mna.Solution{})
	assert.Greater(t, d.prevVd, 0.0)
}

func TestDiodeDefaultsToRoomTemperature(t *testing.T) {
	d := NewDiode("D1", []string{"a", "0"}, 1e-14, 1.0)
	assert.Equal(t, consts.RoomTemp, d.Temp)
}
