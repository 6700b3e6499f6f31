package voxel

// Manip is the concrete stand-in for the spec's "external" voxel buffer
// collaborator: a flat array of Node paired with the Area it covers.
// Ore, decoration, and mapgen operations hold exclusive ownership of one
// Manip for the duration of a single generate call (see the concurrency
// model: no operation may touch another generator's Manip).
type Manip struct {
	Area Area
	Data []Node
}

// NewManip allocates a Manip covering area, with every cell initialised
// to the IGNORE sentinel (an unloaded voxel manipulator has no data yet).
func NewManip(area Area) *Manip {
	data := make([]Node, area.Volume())
	for i := range data {
		data[i].Content = ContentIgnore
	}
	return &Manip{Area: area, Data: data}
}

// Fill sets every cell in the manipulator to n. Useful for test fixtures
// that need a solid block of stone or air to place ores/decorations into.
func (m *Manip) Fill(n Node) {
	for i := range m.Data {
		m.Data[i] = n
	}
}

// At returns the node at p. p must be inside m.Area.
func (m *Manip) At(p Pos) Node {
	return m.Data[m.Area.Index(p)]
}

// Set writes n at p. p must be inside m.Area.
func (m *Manip) Set(p Pos, n Node) {
	m.Data[m.Area.Index(p)] = n
}

// AtIndex and SetIndex operate on a raw linear index, for stride-walk
// callers using Area.AddY. Callers must check Area.ContainsIndex first.
func (m *Manip) AtIndex(i int) Node {
	return m.Data[i]
}

func (m *Manip) SetIndex(i int, n Node) {
	m.Data[i] = n
}
