package report

import (
	"bytes"
	"fmt"
	"html"
)

// RenderHTML serializes a report into a standalone printable HTML document.
// The output is read-only: it contains no form fields, only a print trigger
// that is hidden in print media. Rendering is deterministic string
// templating; the same report always yields the same bytes.
func RenderHTML(r Report) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}
	esc := html.EscapeString

	writeLn("<!DOCTYPE html>")
	writeLn(`<html lang="en">`)
	writeLn("<head>")
	writeLn(`<meta charset="UTF-8">`)
	writeLn("<title>Readiness report - care claim " + esc(r.InsuredName) + "</title>")
	writeLn("<style>")
	writeLn(reportCSS)
	writeLn("</style>")
	writeLn("</head>")
	writeLn("<body>")
	writeLn("<h1>Readiness report - long-term-care claim</h1>")
	writeLn(`<div class="subtitle">For: <strong>` + esc(r.InsuredName) + "</strong> &nbsp;|&nbsp; Generated: " + esc(r.GeneratedAt) + "</div>")
	writeLn(`<button class="no-print" onclick="window.print()">Print</button>`)

	for _, s := range r.FormSections {
		badgeClass, badgeText := "status-missing", "Information missing"
		if s.Complete() {
			badgeClass, badgeText = "status-ok", "Complete"
		}
		writeLn("<h2>" + esc(s.Title) + ` <span class="status-box ` + badgeClass + `">` + badgeText + "</span></h2>")
		writeLn(`<div class="section">`)
		for _, it := range s.Items {
			if it.Value != nil {
				writeLn(`<div class="row"><span class="row-label">` + esc(it.Label) + `:</span><span class="row-value">` + esc(*it.Value) + "</span></div>")
			}
		}
		for _, it := range s.Items {
			if it.Value == nil {
				writeLn(`<div class="row"><span class="row-label">` + esc(it.Label) + `:</span><span class="row-missing">not filled - complete it in the form</span></div>`)
			}
		}
		writeLn("</div>")
	}

	writeLn(`<div class="summary-box">`)
	writeLn(fmt.Sprintf("<h3>Documents already in hand (%d)</h3>", len(r.DocsReady)))
	if len(r.DocsReady) == 0 {
		writeLn(`<div class="placeholder">No documents marked yet</div>`)
	}
	for _, d := range r.DocsReady {
		writeLn(`<div class="doc-item"><span class="doc-icon">&#10003;</span><span>` + esc(d) + "</span></div>")
	}
	writeLn("</div>")

	writeLn(`<div class="todo-box">`)
	writeLn(fmt.Sprintf("<h3>Documents still to obtain (%d)</h3>", len(r.DocsMissing)))
	if len(r.DocsMissing) == 0 {
		writeLn(`<div class="placeholder-ok">Excellent! You have every document &#10003;</div>`)
	}
	for _, d := range r.DocsMissing {
		writeLn(`<div class="doc-item"><span class="doc-icon">&#9744;</span><span>` + esc(d) + "</span></div>")
	}
	writeLn("</div>")

	writeLn("<h2>Mandatory attachments for submission</h2>")
	writeLn("<p>These documents must accompany the claim form:</p>")
	for _, req := range r.AlwaysRequired {
		writeLn(`<div class="doc-item"><span class="doc-icon">&#9744;</span><div><div><strong>` + esc(req.Text) + "</strong></div>" + tipDiv(req.Tip) + "</div></div>")
	}

	writeLn("<h2>How to submit</h2>")
	writeLn(`<div class="section">`)
	for _, ch := range submissionChannels {
		writeLn(`<div class="row"><span class="row-label">` + esc(ch.Label) + `:</span><span class="row-value">` + esc(ch.Value) + "</span></div>")
	}
	writeLn("</div>")

	writeLn(`<div class="footer">Produced with the care-claim companion tool &nbsp;|&nbsp; not an official insurer form &nbsp;|&nbsp; ` + esc(r.GeneratedAt) + "</div>")
	writeLn("</body></html>")

	return buf.String()
}

func tipDiv(tip string) string {
	if tip == "" {
		return ""
	}
	return `<div class="doc-tip">` + html.EscapeString(tip) + "</div>"
}

const reportCSS = `* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: sans-serif; color: #3d3d3d; padding: 40px; max-width: 800px; margin: 0 auto; font-size: 14px; line-height: 1.7; }
h1 { font-size: 22px; margin-bottom: 4px; }
h2 { font-size: 17px; color: #6b8f71; margin: 28px 0 12px; padding-bottom: 6px; border-bottom: 2px solid #e8e0d0; }
h3 { font-size: 15px; color: #5a7d60; margin: 0 0 10px; }
.subtitle { color: #8a8a8a; font-size: 13px; margin-bottom: 24px; }
.section { margin-bottom: 8px; }
.row { display: flex; padding: 6px 0; border-bottom: 1px solid #f0ebe0; }
.row-label { font-weight: 600; min-width: 200px; color: #5a5a5a; }
.row-value { color: #3d3d3d; }
.row-missing { color: #c75b3a; font-style: italic; }
.status-box { display: inline-block; padding: 3px 10px; border-radius: 6px; font-size: 12px; font-weight: 600; }
.status-ok { background: #edf5ee; color: #4a7a50; }
.status-missing { background: #fef3f0; color: #c75b3a; }
.doc-item { padding: 6px 0; border-bottom: 1px solid #f0ebe0; display: flex; align-items: flex-start; gap: 8px; }
.doc-icon { flex-shrink: 0; }
.doc-tip { font-size: 12px; color: #8a8a8a; margin-top: 2px; }
.placeholder { color: #8a8a8a; padding: 8px 0; }
.placeholder-ok { color: #6b8f71; padding: 8px 0; }
.todo-box { background: #fef8f0; border: 2px solid #e8d5b0; border-radius: 12px; padding: 20px; margin: 24px 0; }
.summary-box { background: #edf5ee; border: 2px solid #b8d4bc; border-radius: 12px; padding: 20px; margin: 24px 0; }
.no-print { background: #6b8f71; color: white; border: none; padding: 10px 28px; border-radius: 10px; font-size: 15px; font-weight: 700; cursor: pointer; margin-bottom: 20px; }
.footer { margin-top: 40px; padding-top: 16px; border-top: 2px solid #e8e0d0; font-size: 12px; color: #aaaaaa; text-align: center; }
@media print { body { padding: 20px; } .no-print { display: none; } }`
