package render

import (
	"os"
	"path/filepath"
	"testing"
)

// TestSaveContourPlot writes a contour overlay plot and checks the file
func TestSaveContourPlot(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping plot rendering in short mode")
	}

	file := filepath.Join(t.TempDir(), "contour.png")
	if err := SaveContourPlot(squarePath(), squareSeries(t), 128, file); err != nil {
		t.Fatalf("SaveContourPlot failed: %v", err)
	}

	info, err := os.Stat(file)
	if err != nil {
		t.Fatalf("Expected plot file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected a non-empty plot file")
	}
}

// TestSaveSpectrumPlot writes an amplitude spectrum plot and checks the file
func TestSaveSpectrumPlot(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping plot rendering in short mode")
	}

	file := filepath.Join(t.TempDir(), "spectrum.png")
	if err := SaveSpectrumPlot(squareSeries(t), file); err != nil {
		t.Fatalf("SaveSpectrumPlot failed: %v", err)
	}

	info, err := os.Stat(file)
	if err != nil {
		t.Fatalf("Expected plot file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected a non-empty plot file")
	}
}

// TestSaveContourPlotBadPath verifies error propagation for unwritable paths
func TestSaveContourPlotBadPath(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping plot rendering in short mode")
	}

	file := filepath.Join(t.TempDir(), "missing", "nested", "contour.png")
	if err := SaveContourPlot(squarePath(), squareSeries(t), 32, file); err == nil {
		t.Error("Expected an error when the target directory does not exist")
	}
}
