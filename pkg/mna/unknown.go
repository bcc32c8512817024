// Package mna implements the Modified Nodal Analysis bookkeeping shared
// by every analysis engine: the symbolic Unknown/IndexMap bijection, the
// triplet assembler, and the solution map / convergence test.
package mna

import "fmt"

// UnknownKind distinguishes a node-voltage unknown from a branch-current
// (Group-2) unknown.
type UnknownKind int

const (
	NodeVoltage UnknownKind = iota
	BranchCurrent
)

// Unknown is a symbolic name of the form V(<node>) or I(<element-id>).
// Ground (node "0") never has an Unknown.
type Unknown struct {
	Kind UnknownKind
	Name string // node name or element id
}

func Voltage(node string) Unknown { return Unknown{Kind: NodeVoltage, Name: node} }
func Current(elementID string) Unknown { return Unknown{Kind: BranchCurrent, Name: elementID} }

// String renders the unknown in spec notation, e.g. "V(out)" or "I(V1)".
func (u Unknown) String() string {
	if u.Kind == BranchCurrent {
		return fmt.Sprintf("I(%s)", u.Name)
	}
	return fmt.Sprintf("V(%s)", u.Name)
}

const Ground = "0"

// IndexMap is a dense, contiguous, 0-based bijection between Unknowns and
// matrix row/column positions, built once per circuit in deterministic
// (insertion) order. Ground never receives an index.
type IndexMap struct {
	index map[Unknown]int
	order []Unknown
}

func NewIndexMap() *IndexMap {
	return &IndexMap{index: make(map[Unknown]int)}
}

// Allocate assigns the next free index to u if it doesn't already have
// one, and returns its index either way.
func (m *IndexMap) Allocate(u Unknown) int {
	if idx, ok := m.index[u]; ok {
		return idx
	}
	idx := len(m.order)
	m.index[u] = idx
	m.order = append(m.order, u)
	return idx
}

// Index returns the position of u and whether it is present.
func (m *IndexMap) Index(u Unknown) (int, bool) {
	idx, ok := m.index[u]
	return idx, ok
}

// VoltageIndex resolves a node name to its matrix index, returning
// (-1, false) for ground ("0" or "gnd") rather than allocating one.
func (m *IndexMap) VoltageIndex(node string) (int, bool) {
	if IsGround(node) {
		return -1, false
	}
	return m.Index(Voltage(node))
}

func IsGround(node string) bool {
	return node == "0" || node == "gnd" || node == ""
}

// Size is the order of the MNA system: the number of unknowns.
func (m *IndexMap) Size() int { return len(m.order) }

// Unknowns returns the unknowns in allocation order.
func (m *IndexMap) Unknowns() []Unknown {
	out := make([]Unknown, len(m.order))
	copy(out, m.order)
	return out
}
