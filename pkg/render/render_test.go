package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yumyai/homoindex/pkg/model"
)

func exampleTable(t *testing.T) *model.OrthogroupTable {
	t.Helper()
	input := "Orthogroup\tSpA\tSpB\n" +
		"OG0001\tg1, g2\t\n" +
		"OG0002\tg3\tg4, g5\n"
	table, err := model.ReadOrthogroupTable(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestRenderGeneReportFound(t *testing.T) {
	table := exampleTable(t)
	result, found := model.QueryGene(table, "g4")
	if !found {
		t.Fatal("g4 should be found")
	}

	var buf bytes.Buffer
	if err := RenderGeneReport(&buf, table, "g4", result); err != nil {
		t.Fatal(err)
	}

	want := "Total species: 2\n" +
		"Total orthogroups: 2\n" +
		"\n" +
		"Gene 'g4' belongs to Orthogroup: OG0002\n" +
		"Homologous genes in the same orthogroup:\n" +
		"\n" +
		"SpA: g3\n" +
		"SpB: g4, g5\n" +
		"\n" +
		"---\n"

	if buf.String() != want {
		t.Errorf("report mismatch\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRenderGeneReportNotFound(t *testing.T) {
	table := exampleTable(t)

	var buf bytes.Buffer
	if err := RenderGeneReport(&buf, table, "zz9", nil); err != nil {
		t.Fatal(err)
	}

	want := "Total species: 2\n" +
		"Total orthogroups: 2\n" +
		"\n" +
		"Gene 'zz9' not found in any orthogroup.\n"

	if buf.String() != want {
		t.Errorf("report mismatch\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRenderSummaryTSV(t *testing.T) {
	table := exampleTable(t)

	var results []*model.QueryResult
	for _, gene := range []string{"g1", "g4"} {
		r, found := model.QueryGene(table, gene)
		if !found {
			t.Fatalf("%s should be found", gene)
		}
		results = append(results, r)
	}

	var buf bytes.Buffer
	if err := RenderSummaryTSV(&buf, results); err != nil {
		t.Fatal(err)
	}

	want := "Gene_ID\tOrthogroup_ID\tSpecies_Count\tGene_Count\tSpecies_List\n" +
		"g1\tOG0001\t1\t2\tSpA\n" +
		"g4\tOG0002\t2\t3\tSpA; SpB\n"

	if buf.String() != want {
		t.Errorf("summary mismatch\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRenderOrthogroupPage(t *testing.T) {
	table := exampleTable(t)
	result, found := model.QueryGene(table, "g4")
	if !found {
		t.Fatal("g4 should be found")
	}

	var buf bytes.Buffer
	err := RenderOrthogroupPage(&buf, OrthogroupPageData{
		Genus:          "Burkholderia",
		GeneID:         "g4",
		NumSpecies:     table.NumSpecies(),
		NumOrthogroups: table.NumOrthogroups(),
		Result:         result,
	})
	if err != nil {
		t.Fatal(err)
	}

	page := buf.String()
	for _, want := range []string{"OG0002", "Burkholderia", "g4, g5", "2 species"} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderOrthogroupPageNotFound(t *testing.T) {
	table := exampleTable(t)

	var buf bytes.Buffer
	err := RenderOrthogroupPage(&buf, OrthogroupPageData{
		Genus:          "Burkholderia",
		GeneID:         "zz9",
		NumSpecies:     table.NumSpecies(),
		NumOrthogroups: table.NumOrthogroups(),
	})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "not found in any orthogroup") {
		t.Error("page should carry the not-found message")
	}
}
