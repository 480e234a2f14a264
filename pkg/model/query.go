package model

import (
	"strings"
)

// QueryGene scans table rows in file order and returns the first
// orthogroup whose membership cells contain geneID as a substring.
// The second return is false when no row matches.
func QueryGene(table *OrthogroupTable, geneID string) (*QueryResult, bool) {
	for _, row := range table.Rows {
		if !rowHasGene(row, geneID) {
			continue
		}
		return collectMembers(table, row, geneID), true
	}
	return nil, false
}

// Substring match, same as matching the raw cell text.
func rowHasGene(row OrthogroupRow, geneID string) bool {
	for _, cell := range row.Cells {
		if strings.Contains(cell, geneID) {
			return true
		}
	}
	return false
}

func collectMembers(table *OrthogroupTable, row OrthogroupRow, geneID string) *QueryResult {

	result := &QueryResult{
		GeneID:       geneID,
		OrthogroupID: row.ID,
	}

	for i, species := range table.Species {
		cell := strings.TrimSpace(row.Cells[i])
		if cell == "" {
			continue
		}

		genes := SplitGeneCell(cell)
		result.GeneCount += len(genes)
		result.Members = append(result.Members, SpeciesGenes{Species: species, Genes: genes})
	}
	result.SpeciesCount = len(result.Members)

	return result
}

// SplitGeneCell breaks a ", "-joined membership cell into trimmed gene
// IDs.
func SplitGeneCell(cell string) []string {
	parts := strings.Split(cell, ", ")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// SpeciesList joins the member species names with "; " for the summary
// table.
func (r *QueryResult) SpeciesList() string {
	names := make([]string, 0, len(r.Members))
	for _, m := range r.Members {
		names = append(names, m.Species)
	}
	return strings.Join(names, "; ")
}
