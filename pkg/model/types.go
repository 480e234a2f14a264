package model

// OrthogroupRow is one data row of an orthogroup table: the orthogroup
// ID plus one membership cell per species. A cell is either empty or a
// ", "-joined list of gene IDs.
type OrthogroupRow struct {
	ID    string
	Cells []string
}

// OrthogroupTable is a fully loaded Orthogroups.tsv.
type OrthogroupTable struct {
	Species []string // header columns after the orthogroup ID column
	Rows    []OrthogroupRow
}

// NumSpecies is the species column count of the table.
func (t *OrthogroupTable) NumSpecies() int {
	return len(t.Species)
}

// NumOrthogroups is the data row count of the table.
func (t *OrthogroupTable) NumOrthogroups() int {
	return len(t.Rows)
}

// SpeciesGenes holds the gene members one species contributes to an
// orthogroup.
type SpeciesGenes struct {
	Species string   `json:"species"`
	Genes   []string `json:"genes"`
}

// Return from query
type QueryResult struct {
	GeneID       string         `json:"gene_id"`
	OrthogroupID string         `json:"orthogroup_id"`
	SpeciesCount int            `json:"species_count"`
	GeneCount    int            `json:"gene_count"`
	Members      []SpeciesGenes `json:"members"`
}
