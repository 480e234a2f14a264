// Render HTML for viewing a gene's orthogroup

package render

import (
	"html/template"
	"io"
	"strings"

	"github.com/yumyai/homoindex/pkg/model"
)

var orthogroupPageTemplate *template.Template

// OrthogroupPageData feeds the gene page template. Result is nil when
// the gene was not found.
type OrthogroupPageData struct {
	Genus          string
	GeneID         string
	NumSpecies     int
	NumOrthogroups int
	Result         *model.QueryResult
}

// init initializes the templates used for rendering the gene page.
func init() {
	mainTmpl := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>Orthogroup lookup: {{ .GeneID }}</title>
	</head>
	<body>
		<h1>Gene {{ .GeneID }} in {{ .Genus }}</h1>
		{{template "table_summary" . }}
		{{ if .Result }}
			<h2>Gene {{ .GeneID }} belongs to {{ .Result.OrthogroupID }}</h2>
			{{template "member_table" .Result}}
		{{ else }}
			<p>Gene '{{ .GeneID }}' not found in any orthogroup.</p>
		{{ end }}
	</body>
	</html>`

	tableSummaryTmpl := `
	{{define "table_summary"}}
		<div>
			<p>Genus {{ .Genus }}: {{ .NumSpecies }} species, {{ .NumOrthogroups }} orthogroups.</p>
		</div>
	{{end}}`

	memberTableTmpl := `
	{{define "member_table"}}
		<p>Found in {{ .SpeciesCount }} species, {{ .GeneCount }} genes in total.</p>
		<table border="1">
		<tr>
			<th>Species</th>
			<th>Gene members</th>
			<th>Copies</th>
		</tr>
		{{ range $member := .Members }}
			<tr>
				<td>{{ $member.Species }}</td>
				<td>{{ joinGenes $member.Genes }}</td>
				<td>{{ len $member.Genes }}</td>
			</tr>
		{{ end }}
		</table>
	{{end}}`

	funcMap := template.FuncMap{
		"joinGenes": func(genes []string) string {
			return strings.Join(genes, ", ")
		},
	}

	orthogroupPageTemplate = template.Must(
		template.New("orthogroup_page").Funcs(funcMap).Parse(mainTmpl))
	template.Must(orthogroupPageTemplate.Parse(tableSummaryTmpl))
	template.Must(orthogroupPageTemplate.Parse(memberTableTmpl))
}

func RenderOrthogroupPage(w io.Writer, data OrthogroupPageData) error {
	return orthogroupPageTemplate.Execute(w, data)
}
