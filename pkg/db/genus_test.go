package db

import (
	"errors"
	"os"
	"path"
	"testing"
)

// Lays out root/genus/{Burkholderia,Arabidopsis}/ with a table only for
// Burkholderia.
func mockGenusTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	withTable := path.Join(root, "genus", "Burkholderia")
	if err := os.MkdirAll(withTable, 0755); err != nil {
		t.Fatalf("Failed to create genus folder: %v", err)
	}
	table := "Orthogroup\tSpA\tSpB\nOG0000\tg1, g2\tg3\n"
	if err := os.WriteFile(path.Join(withTable, TableFileName), []byte(table), 0644); err != nil {
		t.Fatalf("Failed to write table: %v", err)
	}

	if err := os.MkdirAll(path.Join(root, "genus", "Arabidopsis"), 0755); err != nil {
		t.Fatalf("Failed to create genus folder: %v", err)
	}

	return root
}

func TestListGenus(t *testing.T) {
	root := mockGenusTree(t)
	gdb := NewGenusDB(root)

	names, err := gdb.ListGenus()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "Arabidopsis" || names[1] != "Burkholderia" {
		t.Errorf("ListGenus = %v, want [Arabidopsis Burkholderia]", names)
	}
}

func TestListGenusNoRoot(t *testing.T) {
	gdb := NewGenusDB(path.Join(t.TempDir(), "nowhere"))

	_, err := gdb.ListGenus()
	if !errors.Is(err, GenusRootNotExists) {
		t.Errorf("expected GenusRootNotExists, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	root := mockGenusTree(t)
	gdb := NewGenusDB(root)

	entry, err := gdb.Resolve("Burkholderia")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Genus != "Burkholderia" {
		t.Errorf("Genus = %s", entry.Genus)
	}
	if entry.TablePath != path.Join(root, "genus", "Burkholderia", TableFileName) {
		t.Errorf("TablePath = %s", entry.TablePath)
	}
}

func TestResolveMissingGenus(t *testing.T) {
	gdb := NewGenusDB(mockGenusTree(t))

	entry, err := gdb.Resolve("Zea")
	if !errors.Is(err, GenusNotExists) {
		t.Errorf("expected GenusNotExists, got %v", err)
	}
	if entry.Dir == "" {
		t.Error("entry paths should be filled in even on error")
	}
}

func TestResolveMissingTable(t *testing.T) {
	gdb := NewGenusDB(mockGenusTree(t))

	entry, err := gdb.Resolve("Arabidopsis")
	if !errors.Is(err, TableNotExists) {
		t.Errorf("expected TableNotExists, got %v", err)
	}
	if entry.TablePath == "" {
		t.Error("entry.TablePath should name the missing file")
	}
}
