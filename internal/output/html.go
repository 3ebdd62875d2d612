package output

import (
	"fmt"
	"html/template"
	"io"

	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

// HTMLFormatter renders results as a self-contained HTML report with
// styled status badges and per-tool data tables.
type HTMLFormatter struct{}

func (f *HTMLFormatter) Format(w io.Writer, results []types.ToolResult) error {
	views := make([]resultView, len(results))
	for i, r := range results {
		views[i] = newResultView(r)
	}
	return htmlTpl.Execute(w, templateData{Results: views})
}

type templateData struct {
	Results []resultView
}

type resultView struct {
	ToolName string
	Target   string
	Status   string
	Class    string
	Error    string
	Stderr   string
	Fields   []fieldView
}

type fieldView struct {
	Key   string
	Value string
}

func newResultView(r types.ToolResult) resultView {
	v := resultView{
		ToolName: r.ToolName,
		Target:   r.Target,
		Status:   statusLabel(r),
		Error:    r.Error,
		Stderr:   r.Stderr,
	}
	switch {
	case r.Success:
		v.Class = "ok"
	case r.TimedOut():
		v.Class = "timeout"
	default:
		v.Class = "fail"
	}
	for _, key := range sortedKeys(r.Data) {
		v.Fields = append(v.Fields, fieldView{
			Key:   key,
			Value: renderValue(r.Data[key], 0),
		})
	}
	return v
}

var htmlTpl = template.Must(template.New("report").Parse(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>appsec report</title>
<style>%s</style>
</head>
<body>
<div class="container">
  <h1>appsec report</h1>

  {{range .Results}}
  <section class="tool-section">
    <h2>{{.ToolName}} &mdash; {{.Target}} <span class="badge {{.Class}}">{{.Status}}</span></h2>

    {{if .Error}}
      <div class="error-box">{{.Error}}</div>
    {{else if .Stderr}}
      <pre class="stderr-box">{{.Stderr}}</pre>
    {{else if not .Fields}}
      <p class="no-data">No data.</p>
    {{else}}
      <table>
        <thead>
          <tr><th>Field</th><th>Value</th></tr>
        </thead>
        <tbody>
          {{range .Fields}}
          <tr><td>{{.Key}}</td><td><pre>{{.Value}}</pre></td></tr>
          {{end}}
        </tbody>
      </table>
    {{end}}
  </section>
  {{end}}
</div>
</body>
</html>`, cssStyles)))

const cssStyles = `
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,Helvetica,Arial,sans-serif;
     line-height:1.6;color:#1a1a2e;background:#f5f5fa;padding:2rem}
.container{max-width:960px;margin:0 auto}
h1{margin-bottom:1rem;font-size:1.8rem}
h2{margin:1.5rem 0 .75rem;font-size:1.3rem;border-bottom:2px solid #e0e0e0;padding-bottom:.3rem}
.badge{display:inline-block;padding:2px 10px;border-radius:12px;font-size:.8rem;font-weight:700;color:#fff;text-transform:uppercase}
.badge.ok{background:#2e7d32}
.badge.timeout{background:#f9a825;color:#333}
.badge.fail{background:#d32f2f}
table{width:100%;border-collapse:collapse;margin-bottom:1rem}
th,td{text-align:left;padding:.5rem .75rem;border-bottom:1px solid #e0e0e0;vertical-align:top}
th{background:#eaeaea;font-weight:600}
td pre{white-space:pre-wrap;word-break:break-word;font-size:.85rem}
.error-box{background:#ffebee;color:#c62828;padding:.75rem 1rem;border-radius:6px;margin-bottom:1rem}
.stderr-box{background:#fff8e1;color:#6d4c00;padding:.75rem 1rem;border-radius:6px;margin-bottom:1rem;
            white-space:pre-wrap;word-break:break-word;font-size:.85rem}
.no-data{color:#666;font-style:italic}
.tool-section{margin-bottom:2rem}
`
