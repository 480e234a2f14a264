// Render the per-gene text report produced by batch runs.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/yumyai/homoindex/pkg/model"
)

// RenderGeneReport writes the report for one queried gene. A nil
// result renders the not-found form. Either way the report opens with
// the table totals.
func RenderGeneReport(w io.Writer, table *model.OrthogroupTable, gene_id string, result *model.QueryResult) error {

	if _, err := fmt.Fprintf(w, "Total species: %d\n", table.NumSpecies()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total orthogroups: %d\n\n", table.NumOrthogroups()); err != nil {
		return err
	}

	if result == nil {
		_, err := fmt.Fprintf(w, "Gene '%s' not found in any orthogroup.\n", gene_id)
		return err
	}

	if _, err := fmt.Fprintf(w, "Gene '%s' belongs to Orthogroup: %s\n", gene_id, result.OrthogroupID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Homologous genes in the same orthogroup:\n\n"); err != nil {
		return err
	}

	for _, member := range result.Members {
		if _, err := fmt.Fprintf(w, "%s: %s\n", member.Species, strings.Join(member.Genes, ", ")); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n---\n")
	return err
}
