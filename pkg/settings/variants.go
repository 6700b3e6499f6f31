package settings

import "github.com/OCharnyshevich/voxelmapgen/pkg/noise"

// V6Params holds every parameter mgv6-style terrain shaping reads out
// of Settings, per spec §6.
type V6Params struct {
	FreqDesert float32
	FreqBeach  float32

	NPTerrainBase   noise.Params
	NPTerrainHigher noise.Params
	NPSteepness     noise.Params
	NPHeightSelect  noise.Params
	NPMud           noise.Params
	NPBeach         noise.Params
	NPBiome         noise.Params
	NPCave          noise.Params
	NPHumidity      noise.Params
	NPTrees         noise.Params
	NPAppleTrees    noise.Params
}

// V7Params holds every parameter mgv7-style terrain shaping reads out
// of Settings, per spec §6.
type V7Params struct {
	NPTerrainBase    noise.Params
	NPTerrainAlt     noise.Params
	NPTerrainMod     noise.Params
	NPTerrainPersist noise.Params
	NPHeightSelect   noise.Params
	NPRidge          noise.Params
}

// ReadV6Params reads the mgv6_* key set. Every key must resolve; if any
// is missing or malformed, ReadV6Params reports failure without
// returning any partial state, matching spec §6's all-or-nothing
// readParams contract.
func ReadV6Params(s Settings) (V6Params, bool) {
	var p V6Params
	var ok bool

	if p.FreqDesert, ok = s.GetFloat("mgv6_freq_desert"); !ok {
		return V6Params{}, false
	}
	if p.FreqBeach, ok = s.GetFloat("mgv6_freq_beach"); !ok {
		return V6Params{}, false
	}

	nps := []struct {
		key string
		out *noise.Params
	}{
		{"mgv6_np_terrain_base", &p.NPTerrainBase},
		{"mgv6_np_terrain_higher", &p.NPTerrainHigher},
		{"mgv6_np_steepness", &p.NPSteepness},
		{"mgv6_np_height_select", &p.NPHeightSelect},
		{"mgv6_np_mud", &p.NPMud},
		{"mgv6_np_beach", &p.NPBeach},
		{"mgv6_np_biome", &p.NPBiome},
		{"mgv6_np_cave", &p.NPCave},
		{"mgv6_np_humidity", &p.NPHumidity},
		{"mgv6_np_trees", &p.NPTrees},
		{"mgv6_np_apple_trees", &p.NPAppleTrees},
	}
	for _, np := range nps {
		if !s.GetNoiseParams(np.key, np.out) {
			return V6Params{}, false
		}
	}
	return p, true
}

// ReadV7Params reads the mgv7_* key set, with the same all-or-nothing
// contract as ReadV6Params.
func ReadV7Params(s Settings) (V7Params, bool) {
	var p V7Params

	nps := []struct {
		key string
		out *noise.Params
	}{
		{"mgv7_np_terrain_base", &p.NPTerrainBase},
		{"mgv7_np_terrain_alt", &p.NPTerrainAlt},
		{"mgv7_np_terrain_mod", &p.NPTerrainMod},
		{"mgv7_np_terrain_persist", &p.NPTerrainPersist},
		{"mgv7_np_height_select", &p.NPHeightSelect},
		{"mgv7_np_ridge", &p.NPRidge},
	}
	for _, np := range nps {
		if !s.GetNoiseParams(np.key, np.out) {
			return V7Params{}, false
		}
	}
	return p, true
}
