// Render the landing page.

package render

import (
	"html/template"
	"io"
)

var indexPageTemplate *template.Template

// IndexPageData feeds the landing page template.
type IndexPageData struct {
	Version string
	Genus   []string
}

func init() {
	indexTmpl := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>HomoIndex</title>
	</head>
	<body>
		<header>
			<h1>HomoIndex v{{ .Version }}</h1>
			<p>Gene orthogroup lookup across genus orthology tables.</p>
		</header>
		<h2>Available genus</h2>
		{{ if .Genus }}
			<ul>
			{{ range $name := .Genus }}
				<li><a href="/api/v1/genus/{{ $name }}">{{ $name }}</a></li>
			{{ end }}
			</ul>
		{{ else }}
			<p>No genus data found.</p>
		{{ end }}
		<p>Look up a gene at /genus/&lt;genus&gt;/gene/&lt;gene_id&gt;</p>
	</body>
	</html>`

	indexPageTemplate = template.Must(template.New("index_page").Parse(indexTmpl))
}

func RenderIndexPage(w io.Writer, data IndexPageData) error {
	return indexPageTemplate.Execute(w, data)
}
