package report

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/expoflow/gulfood-journey/internal/store"
)

// Renderer produces PDF bytes for a journey plan. The HTTP layer depends on
// this interface so tests can substitute a stub for headless Chromium.
type Renderer interface {
	Render(ctx context.Context, plan store.JourneyPlan) ([]byte, error)
}

// ChromiumRenderer prints the markdown report through headless Chromium.
type ChromiumRenderer struct {
	chromePath string
}

func NewChromiumRenderer() *ChromiumRenderer {
	return &ChromiumRenderer{chromePath: detectChromePath()}
}

func (r *ChromiumRenderer) Render(ctx context.Context, plan store.JourneyPlan) ([]byte, error) {
	htmlDoc, err := buildHTML(plan)
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
body{font-family:'Helvetica Neue',Arial,sans-serif;color:#1c1917;line-height:1.55;font-size:11pt;background:#fff;padding:0.6rem;}
h1{font-size:1.6rem;color:#7c2d12;border-bottom:3px solid #ea580c;padding-bottom:0.4rem;}
h2{font-size:1.15rem;color:#9a3412;margin-top:1.4rem;}
table{width:100%;border-collapse:collapse;border:1px solid #a8a29e;font-size:0.8rem;}
th,td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;}
thead th{background:#ffedd5;font-weight:700;}
.score-banner{display:inline-block;background:#ffedd5;color:#9a3412;border:1px solid #fdba74;border-radius:6px;padding:0.25rem 0.7rem;font-weight:700;}
hr{border:0;border-top:1px solid #d6d3d1;margin:1.2rem 0;}
a{color:#1d4ed8;}
html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}
@media print{ @page{size:A4;margin:12mm;} body{padding:0;} }
`

func buildHTML(plan store.JourneyPlan) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(BuildMarkdown(plan)), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}

	banner := fmt.Sprintf("<div class='score-banner'>Event Fit Score: %d/100</div>", plan.RelevanceScore)
	title := html.EscapeString("Gulfood 2026 Journey Plan")
	return "<!doctype html><html><head><meta charset='utf-8'><title>" + title + "</title>" +
		"<style>" + styleCSS + "</style></head><body>" +
		banner + content.String() +
		"</body></html>", nil
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
