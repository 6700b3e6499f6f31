package noise

// Params is the "np" noise parameter block referenced throughout the ore
// and decoration specs: an offset/scale pair, a per-axis spread used as
// the sampling frequency divisor, and octave/persistence/lacunarity
// controls for OctaveNoise2D/3D.
type Params struct {
	Offset      float64
	Scale       float64
	SpreadX     float64
	SpreadY     float64
	SpreadZ     float64
	Seed        int64
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// DefaultParams returns a Params with a flat single octave and unit
// spread, useful as a test fixture or a "just use raw noise" fallback.
func DefaultParams() *Params {
	return &Params{
		Offset: 0, Scale: 1,
		SpreadX: 1, SpreadY: 1, SpreadZ: 1,
		Octaves: 1, Persistence: 0.5, Lacunarity: 2.0,
	}
}

func (np *Params) octaves() int {
	if np.Octaves <= 0 {
		return 1
	}
	return np.Octaves
}

func (np *Params) lacunarity() float64 {
	if np.Lacunarity == 0 {
		return 2.0
	}
	return np.Lacunarity
}

func spreadOrOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// Perlin2D samples a single point of np-shaped octave noise at (x, y),
// seeded by the sum of np.Seed and seed. A fresh Generator is built for
// each call, matching the source's allowance that noise state need not
// be cached across invocations.
func Perlin2D(np *Params, x, y float64, seed int64) float64 {
	g := NewGenerator(seed + np.Seed)
	v := g.OctaveNoise2D(x/spreadOrOne(np.SpreadX), y/spreadOrOne(np.SpreadY), np.octaves(), np.Persistence, np.lacunarity())
	return np.Offset + np.Scale*v
}

// Perlin3D samples a single point of np-shaped octave noise at (x, y, z).
func Perlin3D(np *Params, x, y, z float64, seed int64) float64 {
	g := NewGenerator(seed + np.Seed)
	v := g.OctaveNoise3D(
		x/spreadOrOne(np.SpreadX), y/spreadOrOne(np.SpreadY), z/spreadOrOne(np.SpreadZ),
		np.octaves(), np.Persistence, np.lacunarity())
	return np.Offset + np.Scale*v
}

// Map2D is a reusable bulk sampler over a rectangular XZ footprint,
// matching the source's Noise object. ore.Sheet allocates a fresh one
// per invocation, seeded with the world seed offset by its computed
// vertical start, and calls PerlinMap2D to fill Result in one pass.
type Map2D struct {
	Params       *Params
	Seed         int64
	SizeX, SizeZ int
	Result       []float64
}

// NewMap2D allocates a Map2D covering a sizeX x sizeZ rectangle.
func NewMap2D(np *Params, seed int64, sizeX, sizeZ int) *Map2D {
	return &Map2D{
		Params: np, Seed: seed,
		SizeX: sizeX, SizeZ: sizeZ,
		Result: make([]float64, sizeX*sizeZ),
	}
}

// PerlinMap2D fills Result in z-major, x-minor order starting at world
// coordinate (x0, z0), matching the iteration order OreSheet expects
// when it walks nmin.Z..nmax.Z outer, nmin.X..nmax.X inner.
func (m *Map2D) PerlinMap2D(x0, z0 float64) []float64 {
	g := NewGenerator(m.Seed + m.Params.Seed)
	idx := 0
	for z := 0; z < m.SizeZ; z++ {
		for x := 0; x < m.SizeX; x++ {
			wx := (x0 + float64(x)) / spreadOrOne(m.Params.SpreadX)
			wz := (z0 + float64(z)) / spreadOrOne(m.Params.SpreadZ)
			v := g.OctaveNoise2D(wx, wz, m.Params.octaves(), m.Params.Persistence, m.Params.lacunarity())
			m.Result[idx] = m.Params.Offset + m.Params.Scale*v
			idx++
		}
	}
	return m.Result
}
