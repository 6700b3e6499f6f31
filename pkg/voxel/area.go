package voxel

// Pos is an integer voxel coordinate.
type Pos struct {
	X, Y, Z int
}

// Add returns p+o.
func (p Pos) Add(o Pos) Pos {
	return Pos{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Sub returns p-o.
func (p Pos) Sub(o Pos) Pos {
	return Pos{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// Extent is the per-axis node count of an Area. Callers of AddY obtain
// it once from GetExtent and pass it in.
type Extent struct {
	X, Y, Z int
}

// Area is an axis-aligned inclusive box [MinEdge, MaxEdge]. It linearises
// coordinates to a flat index with X varying fastest, then Y, then Z:
// index = (x-x0) + (y-y0)*sx + (z-z0)*sx*sy.
type Area struct {
	MinEdge, MaxEdge Pos
}

// NewArea builds an Area, tolerating min/max supplied in either order.
func NewArea(a, b Pos) Area {
	min := Pos{minInt(a.X, b.X), minInt(a.Y, b.Y), minInt(a.Z, b.Z)}
	max := Pos{maxInt(a.X, b.X), maxInt(a.Y, b.Y), maxInt(a.Z, b.Z)}
	return Area{MinEdge: min, MaxEdge: max}
}

// GetExtent computes the per-axis size from the edges, for use with
// AddY. Index and IndexXYZ call it on every invocation.
func (a Area) GetExtent() Extent {
	return Extent{
		X: a.MaxEdge.X - a.MinEdge.X + 1,
		Y: a.MaxEdge.Y - a.MinEdge.Y + 1,
		Z: a.MaxEdge.Z - a.MinEdge.Z + 1,
	}
}

// Volume is the total node count of the box.
func (a Area) Volume() int {
	e := a.GetExtent()
	return e.X * e.Y * e.Z
}

// Index linearises p. The result is only meaningful when Contains(p) is
// true; callers must check bounds before dereferencing a buffer with it.
func (a Area) Index(p Pos) int {
	return a.IndexXYZ(p.X, p.Y, p.Z)
}

// IndexXYZ is Index without constructing a Pos.
func (a Area) IndexXYZ(x, y, z int) int {
	e := a.GetExtent()
	return (x - a.MinEdge.X) + (y-a.MinEdge.Y)*e.X + (z-a.MinEdge.Z)*e.X*e.Y
}

// AddY advances a previously computed index by d steps along Y, reusing
// the extent em from GetExtent. It performs no bounds check.
func (a Area) AddY(em Extent, i, d int) int {
	return i + d*em.X
}

// Contains reports whether p lies inside the box.
func (a Area) Contains(p Pos) bool {
	return p.X >= a.MinEdge.X && p.X <= a.MaxEdge.X &&
		p.Y >= a.MinEdge.Y && p.Y <= a.MaxEdge.Y &&
		p.Z >= a.MinEdge.Z && p.Z <= a.MaxEdge.Z
}

// ContainsIndex reports whether a linearised index falls within the box's
// volume. It does not by itself guarantee the index was produced by a
// Pos inside the box (a stride walk that overruns one edge can still
// land in range) — callers that walk via AddY should prefer Contains
// with the corresponding Pos when they have one.
func (a Area) ContainsIndex(i int) bool {
	return i >= 0 && i < a.Volume()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
