// File: persistence.go
// Role: the binary graph file format of spec §6.
//
// Format (little-endian, fixed order):
//
//	u32  n
//	i64  m
//	i64  offsets[n+1]
//	u32  adjacency[m]
//	u8   weighted
//	f64  weights[m]   (always present; zero-filled when weighted==false)
//	u8   directed
//
// Open question (spec §9) resolved: the weights block is always written
// at its full length m regardless of the weighted flag, so the file's
// shape never depends on runtime data — a reader can compute every
// section's offset from n and m alone before even looking at the
// weighted byte. Unweighted stores write m zero float64s.
//
// Filename convention: {dir}{base}_00.bin (two-digit zero-padded suffix),
// matching arch/CacheGraph.cpp's GetFileNameFromFolder.

package store

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

// Save writes s to path in the format documented above. Errors are
// returned wrapped with path context. The file is created (truncated)
// before anything is written and is not removed on error, so a failed
// Save can leave a partial file at path.
func (s *Store) Save(path string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: Save %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, s.n); err != nil {
		return fmt.Errorf("store: Save %q: %w", path, err)
	}
	if err := binary.Write(w, binary.LittleEndian, int64(s.m)); err != nil {
		return fmt.Errorf("store: Save %q: %w", path, err)
	}
	if err := binary.Write(w, binary.LittleEndian, s.offsets); err != nil {
		return fmt.Errorf("store: Save %q: %w", path, err)
	}
	if err := binary.Write(w, binary.LittleEndian, s.adjacency); err != nil {
		return fmt.Errorf("store: Save %q: %w", path, err)
	}
	if err := binary.Write(w, binary.LittleEndian, boolToByte(s.weighted)); err != nil {
		return fmt.Errorf("store: Save %q: %w", path, err)
	}
	weights := s.weights
	if weights == nil {
		weights = make([]float64, s.m)
	}
	if err := binary.Write(w, binary.LittleEndian, weights); err != nil {
		return fmt.Errorf("store: Save %q: %w", path, err)
	}
	if err := binary.Write(w, binary.LittleEndian, boolToByte(s.directed)); err != nil {
		return fmt.Errorf("store: Save %q: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("store: Save %q: %w", path, err)
	}
	return nil
}

// Load replaces s's contents with the graph read from path. On failure s
// is left cleared (zero nodes, no buffers), per spec §7's "errors during
// file I/O... leave the affected store in the cleared state".
func (s *Store) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		s.clear()
		return fmt.Errorf("store: Load %q: %w: %v", path, ErrGraphFileMissing, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		s.clear()
		return fmt.Errorf("store: Load %q: %w: %v", path, ErrGraphFileCorrupt, err)
	}
	var m int64
	if err := binary.Read(r, binary.LittleEndian, &m); err != nil {
		s.clear()
		return fmt.Errorf("store: Load %q: %w: %v", path, ErrGraphFileCorrupt, err)
	}
	if m < 0 {
		s.clear()
		return fmt.Errorf("store: Load %q: %w: negative edge count %d", path, ErrGraphFileCorrupt, m)
	}

	offsets := make([]int64, int(n)+1)
	if err := binary.Read(r, binary.LittleEndian, offsets); err != nil {
		s.clear()
		return fmt.Errorf("store: Load %q: %w: %v", path, ErrGraphFileCorrupt, err)
	}
	adjacency := make([]NodeID, m)
	if err := binary.Read(r, binary.LittleEndian, adjacency); err != nil {
		s.clear()
		return fmt.Errorf("store: Load %q: %w: %v", path, ErrGraphFileCorrupt, err)
	}
	var weightedByte byte
	if err := binary.Read(r, binary.LittleEndian, &weightedByte); err != nil {
		s.clear()
		return fmt.Errorf("store: Load %q: %w: %v", path, ErrGraphFileCorrupt, err)
	}
	weights := make([]float64, m)
	if err := binary.Read(r, binary.LittleEndian, weights); err != nil {
		s.clear()
		return fmt.Errorf("store: Load %q: %w: %v", path, ErrGraphFileCorrupt, err)
	}
	var directedByte byte
	if err := binary.Read(r, binary.LittleEndian, &directedByte); err != nil {
		s.clear()
		return fmt.Errorf("store: Load %q: %w: %v", path, ErrGraphFileCorrupt, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = n
	s.m = uint64(m)
	s.offsets = offsets
	s.adjacency = adjacency
	s.directed = directedByte != 0
	if weightedByte != 0 {
		s.weighted = true
		s.weights = weights
	} else {
		s.weighted = false
		s.weights = nil
	}
	return nil
}

// LoadFromDir loads {dir}{base}_00.bin, matching the two-digit
// zero-padded filename convention of spec §6.
func (s *Store) LoadFromDir(dir, base string) error {
	return s.Load(fmt.Sprintf("%s%s_00.bin", dir, base))
}

func (s *Store) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = 0
	s.m = 0
	s.offsets = nil
	s.adjacency = nil
	s.weights = nil
	s.weighted = false
	s.directed = false
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
