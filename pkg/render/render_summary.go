// Render the cross-gene summary table.

package render

import (
	"fmt"
	"io"

	"github.com/yumyai/homoindex/pkg/model"
)

// SummaryHeader is the header row of summary.tsv.
const SummaryHeader = "Gene_ID\tOrthogroup_ID\tSpecies_Count\tGene_Count\tSpecies_List"

// RenderSummaryTSV writes one row per hit, in query order.
func RenderSummaryTSV(w io.Writer, results []*model.QueryResult) error {

	if _, err := fmt.Fprintln(w, SummaryHeader); err != nil {
		return err
	}

	for _, r := range results {
		_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			r.GeneID, r.OrthogroupID, r.SpeciesCount, r.GeneCount, r.SpeciesList())
		if err != nil {
			return err
		}
	}
	return nil
}
