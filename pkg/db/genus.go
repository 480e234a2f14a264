package db

import (
	"errors"
	"fmt"
	"path"

	"github.com/yumyai/homoindex/internal/util"
)

// Defining possible error
var (
	GenusRootNotExists = errors.New("genus folder does not exists")
	GenusNotExists     = errors.New("genus not found")
	TableNotExists     = errors.New("orthogroup table does not exists")
)

// TableFileName is the orthogroup table every genus folder must carry.
const TableFileName = "Orthogroups.tsv"

// folder which host genus/[genus]/Orthogroups.tsv
type GenusDB struct {
	Root string
}

// GenusEntry locates one genus and its orthogroup table on disk.
type GenusEntry struct {
	Genus     string
	Dir       string
	TablePath string
}

func NewGenusDB(root string) *GenusDB {
	return &GenusDB{Root: root}
}

func (gdb *GenusDB) genusRoot() string {
	return path.Join(gdb.Root, "genus")
}

// ListGenus returns the sorted genus names under the data root.
func (gdb *GenusDB) ListGenus() ([]string, error) {
	if !util.DirExists(gdb.genusRoot()) {
		return nil, fmt.Errorf("%w: %s", GenusRootNotExists, gdb.genusRoot())
	}
	return util.ListDirs(gdb.genusRoot())
}

// Resolve checks the folder and table file for one genus. The returned
// entry carries the paths even when the error is non-nil, so callers
// can name the missing piece.
func (gdb *GenusDB) Resolve(genus string) (GenusEntry, error) {
	entry := GenusEntry{
		Genus:     genus,
		Dir:       path.Join(gdb.genusRoot(), genus),
		TablePath: path.Join(gdb.genusRoot(), genus, TableFileName),
	}

	if !util.DirExists(entry.Dir) {
		return entry, fmt.Errorf("%w: %s", GenusNotExists, genus)
	}
	if !util.FileExists(entry.TablePath) {
		return entry, fmt.Errorf("%w: %s", TableNotExists, entry.TablePath)
	}
	return entry, nil
}
