package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadOrthogroupTable(t *testing.T) {
	input := "Orthogroup\tSpA\tSpB\tSpC\n" +
		"OG0000\tga1, ga2\tgb1\tgc1\n" +
		"OG0001\tga3\t\tgc2, gc3\n" +
		"OG0002\tga4\n" + // short row, pad SpB and SpC
		"\n" +
		"OG0003\t\tgb2\tgc4\n"

	table, err := ReadOrthogroupTable(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	if table.NumSpecies() != 3 {
		t.Errorf("NumSpecies = %d, want 3", table.NumSpecies())
	}
	if table.NumOrthogroups() != 4 {
		t.Errorf("NumOrthogroups = %d, want 4", table.NumOrthogroups())
	}

	if table.Species[0] != "SpA" || table.Species[2] != "SpC" {
		t.Errorf("species parsed wrong: %v", table.Species)
	}

	short := table.Rows[2]
	if short.ID != "OG0002" {
		t.Errorf("row 2 ID = %s, want OG0002", short.ID)
	}
	if len(short.Cells) != 3 {
		t.Fatalf("short row not padded, cells = %v", short.Cells)
	}
	if short.Cells[1] != "" || short.Cells[2] != "" {
		t.Errorf("padded cells should be empty, got %v", short.Cells)
	}

	if table.Rows[1].Cells[2] != "gc2, gc3" {
		t.Errorf("cell kept raw, got %q", table.Rows[1].Cells[2])
	}
}

func TestReadOrthogroupTableCRLF(t *testing.T) {
	input := "Orthogroup\tSpA\tSpB\r\n" +
		"OG0000\tg1, g2\tg3\r\n"

	table, err := ReadOrthogroupTable(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if table.Species[1] != "SpB" {
		t.Errorf("trailing CR not stripped from header: %q", table.Species[1])
	}
	if table.Rows[0].Cells[1] != "g3" {
		t.Errorf("trailing CR not stripped from row: %q", table.Rows[0].Cells[1])
	}
}

func TestReadOrthogroupTableEmpty(t *testing.T) {
	if _, err := ReadOrthogroupTable(strings.NewReader("")); err == nil {
		t.Error("expected an error for an empty table")
	}
}

func TestLoadOrthogroupTable(t *testing.T) {
	tmpdir := t.TempDir()
	path := filepath.Join(tmpdir, "Orthogroups.tsv")

	content := "Orthogroup\tSpA\tSpB\nOG0000\tg1\tg2, g3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadOrthogroupTable(path)
	if err != nil {
		t.Fatal(err)
	}
	if table.NumOrthogroups() != 1 || table.NumSpecies() != 2 {
		t.Errorf("got %d orthogroups / %d species, want 1 / 2",
			table.NumOrthogroups(), table.NumSpecies())
	}

	if _, err := LoadOrthogroupTable(filepath.Join(tmpdir, "missing.tsv")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
