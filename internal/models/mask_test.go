package models

import (
	"testing"
)

// TestNewMask verifies mask allocation and dimension clamping
func TestNewMask(t *testing.T) {
	m := NewMask(4, 3)
	if m.Width != 4 || m.Height != 3 {
		t.Errorf("Expected dimensions 4x3, got %dx%d", m.Width, m.Height)
	}
	if len(m.Bits) != 12 {
		t.Errorf("Expected 12 bits, got %d", len(m.Bits))
	}
	if m.Count() != 0 {
		t.Errorf("Expected a fresh mask to be empty, got %d foreground pixels", m.Count())
	}

	// Negative dimensions clamp to zero instead of panicking
	empty := NewMask(-2, 5)
	if empty.Width != 0 || len(empty.Bits) != 0 {
		t.Errorf("Expected negative width to clamp to an empty mask, got %dx%d with %d bits",
			empty.Width, empty.Height, len(empty.Bits))
	}
}

// TestMaskAtOutOfBounds verifies that out-of-bounds reads return background
func TestMaskAtOutOfBounds(t *testing.T) {
	m := NewMask(2, 2)
	m.Set(0, 0, true)
	m.Set(1, 1, true)

	outside := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-1, -1}, {5, 5}}
	for _, c := range outside {
		if m.At(c[0], c[1]) {
			t.Errorf("Expected At(%d, %d) to be false outside the mask", c[0], c[1])
		}
	}

	if !m.At(0, 0) || !m.At(1, 1) {
		t.Error("Expected in-bounds foreground pixels to read true")
	}
}

// TestMaskSetOutOfBounds verifies that out-of-bounds writes are ignored
func TestMaskSetOutOfBounds(t *testing.T) {
	m := NewMask(2, 2)
	m.Set(-1, 0, true)
	m.Set(0, -1, true)
	m.Set(2, 0, true)
	m.Set(0, 2, true)

	if m.Count() != 0 {
		t.Errorf("Expected out-of-bounds writes to be ignored, got %d foreground pixels", m.Count())
	}
}

// TestMaskClone verifies that clones are deep copies
func TestMaskClone(t *testing.T) {
	m := NewMask(3, 3)
	m.Set(1, 1, true)

	c := m.Clone()
	if c.Count() != 1 || !c.At(1, 1) {
		t.Errorf("Expected clone to copy the foreground pixel, got count %d", c.Count())
	}

	c.Set(0, 0, true)
	if m.At(0, 0) {
		t.Error("Expected writes to the clone to leave the original untouched")
	}
}
