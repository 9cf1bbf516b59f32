package preview

import (
	"html/template"
	"io"
)

var htmlTable = template.Must(template.New("preview").Parse(`<table>
  <thead>
    <tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
  </thead>
{{- if .Rows}}
  <tbody>
{{- range .Rows}}
    <tr>{{range .}}<td{{if .Numeric}} style="text-align: right"{{end}}>{{.Text}}</td>{{end}}</tr>
{{- end}}
  </tbody>
{{- end}}
</table>
`))

// RenderHTML writes t as an HTML table. An empty preview writes nothing.
func RenderHTML(w io.Writer, t Table) error {
	if t.Empty() {
		return nil
	}
	return htmlTable.Execute(w, t)
}
