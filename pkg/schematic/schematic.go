// Package schematic implements the MTSM binary schematic file format: a
// block-pattern template with a compact per-file node-id table, loaded
// and saved with klauspost/compress's zlib implementation, and resolved
// against a live node-definition registry before use.
package schematic

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"github.com/klauspost/compress/zlib"

	"github.com/OCharnyshevich/voxelmapgen/pkg/nodedef"
	"github.com/OCharnyshevich/voxelmapgen/pkg/voxel"
)

const (
	signature      = 0x4D54534D // 'MTSM'
	formatVersion  = 1
)

// Schematic is an in-memory block-pattern template: a size and a flat
// Data array in z,y,x order (matching voxel.Area's own X-fastest
// convention only incidentally — schematic storage order is
// independently fixed by the file format).
type Schematic struct {
	Size voxel.Extent
	Data []voxel.Node

	// NodeNames holds file-local content ids' names until
	// ResolveNodeNames rewrites Data in place; nil once resolved.
	NodeNames []string
}

// Load parses an MTSM file from r.
func Load(r io.Reader) (*Schematic, error) {
	var sig uint32
	if err := binary.Read(r, binary.BigEndian, &sig); err != nil {
		return nil, fmt.Errorf("schematic: read signature: %w", err)
	}
	if sig != signature {
		return nil, fmt.Errorf("schematic: invalid signature %#x", sig)
	}

	var version uint16
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return nil, fmt.Errorf("schematic: read version: %w", err)
	}
	if version != formatVersion {
		return nil, fmt.Errorf("schematic: unsupported version %d", version)
	}

	var dims [3]int16
	if err := binary.Read(r, binary.BigEndian, &dims); err != nil {
		return nil, fmt.Errorf("schematic: read size: %w", err)
	}
	size := voxel.Extent{X: int(dims[0]), Y: int(dims[1]), Z: int(dims[2])}
	nodecount := size.X * size.Y * size.Z

	var nameCount uint16
	if err := binary.Read(r, binary.BigEndian, &nameCount); err != nil {
		return nil, fmt.Errorf("schematic: read name count: %w", err)
	}

	names := make([]string, nameCount)
	for i := range names {
		var length uint16
		if err := binary.Read(r, binary.BigEndian, &length); err != nil {
			return nil, fmt.Errorf("schematic: read name length: %w", err)
		}
		buf := make([]byte, length)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("schematic: read name: %w", err)
		}
		names[i] = string(buf)
	}

	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("schematic: open zlib stream: %w", err)
	}
	defer zr.Close()

	contents := make([]uint16, nodecount)
	if err := binary.Read(zr, binary.BigEndian, contents); err != nil {
		return nil, fmt.Errorf("schematic: read content ids: %w", err)
	}
	param1s := make([]uint8, nodecount)
	if err := binary.Read(zr, binary.BigEndian, param1s); err != nil {
		return nil, fmt.Errorf("schematic: read param1: %w", err)
	}
	param2s := make([]uint8, nodecount)
	if err := binary.Read(zr, binary.BigEndian, param2s); err != nil {
		return nil, fmt.Errorf("schematic: read param2: %w", err)
	}

	data := make([]voxel.Node, nodecount)
	for i := range data {
		data[i] = voxel.Node{Content: contents[i], Param1: param1s[i], Param2: param2s[i]}
	}

	return &Schematic{Size: size, Data: data, NodeNames: names}, nil
}

// Save writes s to w in MTSM format, using ndef to resolve each
// currently-resolved content id back to a name, and rewriting content
// ids through a compact remap table assigned in first-occurrence order.
func Save(w io.Writer, s *Schematic, ndef nodedef.NodeDef) error {
	if err := binary.Write(w, binary.BigEndian, uint32(signature)); err != nil {
		return fmt.Errorf("schematic: write signature: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, uint16(formatVersion)); err != nil {
		return fmt.Errorf("schematic: write version: %w", err)
	}
	dims := [3]int16{int16(s.Size.X), int16(s.Size.Y), int16(s.Size.Z)}
	if err := binary.Write(w, binary.BigEndian, dims); err != nil {
		return fmt.Errorf("schematic: write size: %w", err)
	}

	localIDs := make([]uint16, len(s.Data))
	nodeIDMap := make(map[uint16]uint16)
	var usedNodes []uint16
	for i, n := range s.Data {
		id, ok := nodeIDMap[n.Content]
		if !ok {
			id = uint16(len(usedNodes))
			nodeIDMap[n.Content] = id
			usedNodes = append(usedNodes, n.Content)
		}
		localIDs[i] = id
	}

	if err := binary.Write(w, binary.BigEndian, uint16(len(usedNodes))); err != nil {
		return fmt.Errorf("schematic: write name count: %w", err)
	}
	for _, id := range usedNodes {
		if err := writeName(w, ndef, id); err != nil {
			return err
		}
	}

	var body bytes.Buffer
	if err := binary.Write(&body, binary.BigEndian, localIDs); err != nil {
		return fmt.Errorf("schematic: write content ids: %w", err)
	}
	param1s := make([]uint8, len(s.Data))
	param2s := make([]uint8, len(s.Data))
	for i, n := range s.Data {
		param1s[i] = n.Param1
		param2s[i] = n.Param2
	}
	if err := binary.Write(&body, binary.BigEndian, param1s); err != nil {
		return fmt.Errorf("schematic: write param1: %w", err)
	}
	if err := binary.Write(&body, binary.BigEndian, param2s); err != nil {
		return fmt.Errorf("schematic: write param2: %w", err)
	}

	zw := zlib.NewWriter(w)
	if _, err := zw.Write(body.Bytes()); err != nil {
		return fmt.Errorf("schematic: write zlib body: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("schematic: close zlib stream: %w", err)
	}
	return nil
}

func writeName(w io.Writer, ndef nodedef.NodeDef, id uint16) error {
	name := ndef.Name(id)
	if err := binary.Write(w, binary.BigEndian, uint16(len(name))); err != nil {
		return fmt.Errorf("schematic: write name length: %w", err)
	}
	if _, err := io.WriteString(w, name); err != nil {
		return fmt.Errorf("schematic: write name: %w", err)
	}
	return nil
}

// ResolveNodeNames walks NodeNames, resolves each through ndef
// (substituting AIR with a warning for any name that fails to
// resolve), and rewrites every Data[i].Content from its file-local id
// to the resolved global id. It is a one-shot operation: NodeNames is
// cleared afterward. Returns an error, rather than panicking, if the
// file's Data references a content id outside NodeNames.
func ResolveNodeNames(s *Schematic, ndef nodedef.NodeDef, log *slog.Logger) error {
	if s.NodeNames == nil {
		return nil
	}

	resolved := make([]uint16, len(s.NodeNames))
	for i, name := range s.NodeNames {
		id := ndef.GetID(name)
		if id == voxel.ContentIgnore {
			if log != nil {
				log.Warn("schematic: node not defined, substituting air", "name", name)
			}
			id = voxel.ContentAir
		}
		resolved[i] = id
	}

	for i, n := range s.Data {
		if int(n.Content) >= len(resolved) {
			return fmt.Errorf("schematic: content id %d out of range for %d names", n.Content, len(resolved))
		}
		s.Data[i].Content = resolved[n.Content]
	}
	s.NodeNames = nil
	return nil
}

// ApplyProbabilities sets Data[i].Param1 for each (world_position,
// param1) pair in plist, converting world position to a template index
// relative to origin p0. Positions that fall outside the template on
// any axis are silently ignored.
func ApplyProbabilities(s *Schematic, plist []ProbabilityEntry, p0 voxel.Pos) {
	for _, entry := range plist {
		p := entry.Pos.Sub(p0)
		if p.X < 0 || p.X >= s.Size.X || p.Y < 0 || p.Y >= s.Size.Y || p.Z < 0 || p.Z >= s.Size.Z {
			continue
		}
		idx := p.Z*(s.Size.Y*s.Size.X) + p.Y*s.Size.X + p.X
		s.Data[idx].Param1 = entry.Param1
	}
}

// ProbabilityEntry is one (world position, probability) pair as
// consumed by ApplyProbabilities.
type ProbabilityEntry struct {
	Pos    voxel.Pos
	Param1 uint8
}
