package report

import (
	"html/template"
	"strings"

	"attendsync/internal/attendance/models"
)

var bodyTemplate = template.Must(template.New("report").Parse(`<h3>Exceptional Report Summary</h3>
<table border="1" style="border-collapse: collapse;">
<tr><th>Status</th><th>Count</th></tr>
{{- range . }}
<tr><td>{{ .Status }}</td><td>{{ .Count }}</td></tr>
{{- end }}
</table>
`))

func renderHTML(counts []models.StatusCount) (string, error) {
	var sb strings.Builder
	if err := bodyTemplate.Execute(&sb, counts); err != nil {
		return "", err
	}
	return sb.String(), nil
}
