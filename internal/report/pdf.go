package report

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// PDFRenderer turns an analysis report into PDF bytes through headless
// Chromium. Input is either raw markdown or a JSON result envelope with a
// report_markdown field.
type PDFRenderer struct {
	chromePath string
}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{chromePath: detectChromePath()}
}

func (r *PDFRenderer) Render(ctx context.Context, report string) ([]byte, error) {
	htmlDoc, err := buildHTML(report)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;padding-right:8px;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, err
	}
	return pdf, nil
}

const styleCSS = `
body{font-family:-apple-system,'Segoe UI',Roboto,sans-serif;color:#1c1917;background:#fff;padding:0.6rem;line-height:1.5;}
.report-wrap{max-width:1000px;margin:0 auto;}
.report-meta{color:#44403c;font-size:0.85rem;margin-bottom:0.8rem;}
.report-meta strong{color:#1c1917;}
.report-badge{display:inline-block;background:#ede9fe;color:#4c1d95;border:1px solid #c4b5fd;border-radius:4px;padding:0.1rem 0.5rem;font-size:0.75rem;margin-right:0.4rem;}
.report-html h1{font-size:1.5rem;border-bottom:2px solid #7c3aed;padding-bottom:0.3rem;}
.report-html h2{font-size:1.15rem;color:#4c1d95;margin-top:1.4rem;}
.report-html table{width:100%;border-collapse:collapse;border:1px solid #a8a29e;font-size:0.8rem;}
.report-html th,.report-html td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;}
.report-html thead th{background:#f5f3ff;font-weight:700;}
html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}
@media print{ @page{size:auto;margin:12mm;} body{padding:0;} .report-wrap{max-width:none;} }
`

func buildHTML(report string) (string, error) {
	markdown := report
	metaHTML := ""
	badgeHTML := ""

	var envelope map[string]any
	if json.Unmarshal([]byte(report), &envelope) == nil {
		if s, ok := envelope["report_markdown"].(string); ok && strings.TrimSpace(s) != "" {
			markdown = s
		}
		metaHTML = buildMetaHTML(envelope)
		badgeHTML = buildBadgeHTML(envelope)
	}

	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}

	return "<!doctype html><html><head><meta charset='utf-8'><title>HACKSEEK Analysis</title>" +
		"<style>" + styleCSS + "</style></head><body>" +
		"<div class='report-wrap'>" +
		"<div class='report-meta'>" + metaHTML + "</div>" +
		"<div>" + badgeHTML + "</div>" +
		"<div class='report-html'>" + content.String() + "</div>" +
		"</div></body></html>", nil
}

func buildMetaHTML(env map[string]any) string {
	var out strings.Builder
	if problem := lookupString(env, "result", "request", "problem_statement"); problem != "" {
		if len(problem) > 160 {
			problem = problem[:160] + "..."
		}
		out.WriteString("<div><strong>Problem:</strong> " + html.EscapeString(problem) + "</div>")
	}
	if completed := lookupString(env, "result", "metadata", "completed_at"); completed != "" {
		if ts, err := time.Parse(time.RFC3339Nano, completed); err == nil {
			out.WriteString("<div><strong>Date:</strong> " + html.EscapeString(ts.In(time.Local).Format("January 2, 2006 at 3:04 PM MST")) + "</div>")
		} else {
			out.WriteString("<div><strong>Date:</strong> " + html.EscapeString(completed) + "</div>")
		}
	}
	return out.String()
}

func buildBadgeHTML(env map[string]any) string {
	var out strings.Builder
	if mode := lookupString(env, "result", "metadata", "mode"); mode != "" {
		out.WriteString("<span class='report-badge'>" + html.EscapeString(mode) + "</span>")
	}
	if enhanced := lookupString(env, "result", "enhanced_insights"); enhanced != "" {
		out.WriteString("<span class='report-badge'>AI-Enhanced</span>")
	}
	return out.String()
}

func lookupString(root map[string]any, path ...string) string {
	var cur any = root
	for _, p := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[p]
	}
	s, _ := cur.(string)
	return strings.TrimSpace(s)
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
