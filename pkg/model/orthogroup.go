package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Orthogroup rows for large genera can run very long, so give the
// scanner room well past the default token size.
const maxLineBytes = 16 * 1024 * 1024

// LoadOrthogroupTable reads a tab-separated orthogroup table from disk.
func LoadOrthogroupTable(path string) (*OrthogroupTable, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open orthogroup table: %w", err)
	}
	defer fh.Close()

	table, err := ReadOrthogroupTable(fh)
	if err != nil {
		return nil, fmt.Errorf("read orthogroup table %s: %w", path, err)
	}
	return table, nil
}

// ReadOrthogroupTable parses an orthogroup table. The first header
// column names the orthogroup ID column and every later column is a
// species. Rows shorter than the header are padded with empty cells,
// blank lines are skipped.
func ReadOrthogroupTable(r io.Reader) (*OrthogroupTable, error) {

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), maxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty table, no header row")
	}

	header := strings.Split(strings.TrimRight(scanner.Text(), "\r"), "\t")
	table := &OrthogroupTable{
		Species: header[1:],
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		cells := make([]string, len(table.Species))
		copy(cells, fields[1:])

		table.Rows = append(table.Rows, OrthogroupRow{ID: fields[0], Cells: cells})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return table, nil
}
