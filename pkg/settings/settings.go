// Package settings is the key-value parameter collaborator from spec
// §6: a flat store of typed values keyed by string, queried by the
// mapgen variant parameter readers (ReadV6Params, ReadV7Params). There
// is no ecosystem library that models this bespoke
// "np(offset, scale, spread, seed, octaves, persistence, lacunarity)"
// noise-parameter syntax, so the parser here is hand-rolled against the
// standard library (see DESIGN.md).
package settings

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/OCharnyshevich/voxelmapgen/pkg/noise"
)

// Settings is the read-only interface every parameter reader depends
// on. GetFloat and GetNoiseParams both report success via their second
// return, never an error: a missing or malformed key is a
// configuration-time resolution failure (spec §7 taxon 1), not a fatal
// one.
type Settings interface {
	GetFloat(key string) (float32, bool)
	GetNoiseParams(key string, out *noise.Params) bool
}

// Store is an in-memory Settings backed by a flat map, loaded from a
// Minetest-style "key = value" text file or populated directly by
// callers (e.g. tests).
type Store struct {
	values map[string]string
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

// Set assigns a raw string value to key, overwriting any prior value.
func (s *Store) Set(key, value string) {
	s.values[key] = value
}

// Load parses "key = value" lines from r into the Store, one
// assignment per line. Blank lines and lines starting with '#' are
// ignored. A noise-parameter value spans a single line using the
// "offset, scale, (spreadX, spreadY, spreadZ), seed, octaves,
// persistence, lacunarity" tuple syntax read back out by
// GetNoiseParams.
func (s *Store) Load(r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return fmt.Errorf("settings: line %d: missing '=': %q", line, text)
		}
		s.values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("settings: read: %w", err)
	}
	return nil
}

// GetFloat implements Settings.
func (s *Store) GetFloat(key string) (float32, bool) {
	raw, ok := s.values[key]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

// GetNoiseParams implements Settings. The expected value shape is:
//
//	offset, scale, (spreadX, spreadY, spreadZ), seed, octaves, persistence, lacunarity
//
// e.g. "0, 40, (100, 100, 100), 5900033, 5, 0.63, 2.0". Any deviation
// from that shape is a parse failure, reported by returning false; out
// is left untouched on failure.
func (s *Store) GetNoiseParams(key string, out *noise.Params) bool {
	raw, ok := s.values[key]
	if !ok {
		return false
	}
	np, ok := parseNoiseParams(raw)
	if !ok {
		return false
	}
	*out = np
	return true
}

func parseNoiseParams(raw string) (noise.Params, bool) {
	open := strings.Index(raw, "(")
	close := strings.Index(raw, ")")
	if open < 0 || close < 0 || close < open {
		return noise.Params{}, false
	}

	head := splitFields(raw[:open])
	spread := splitFields(raw[open+1 : close])
	tail := splitFields(raw[close+1:])

	if len(head) != 2 || len(spread) != 3 || len(tail) != 4 {
		return noise.Params{}, false
	}

	offset, ok1 := parseFloat(head[0])
	scale, ok2 := parseFloat(head[1])
	sx, ok3 := parseFloat(spread[0])
	sy, ok4 := parseFloat(spread[1])
	sz, ok5 := parseFloat(spread[2])
	seed, ok6 := parseInt(tail[0])
	octaves, ok7 := parseInt(tail[1])
	persistence, ok8 := parseFloat(tail[2])
	lacunarity, ok9 := parseFloat(tail[3])

	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7 && ok8 && ok9) {
		return noise.Params{}, false
	}

	return noise.Params{
		Offset: offset, Scale: scale,
		SpreadX: sx, SpreadY: sy, SpreadZ: sz,
		Seed: int64(seed), Octaves: int(octaves),
		Persistence: persistence, Lacunarity: lacunarity,
	}, true
}

func splitFields(s string) []string {
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func parseInt(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	return v, err == nil
}
