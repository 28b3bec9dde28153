// Package printing drives a headless browser to turn a printable HTML document
// into a PDF.
package printing

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds one print job, browser start included
const DefaultTimeout = 60 * time.Second

// US Letter in inches
const (
	paperWidth  = 8.5
	paperHeight = 11.0
)

// Printer turns a self-contained HTML document into PDF bytes
type Printer interface {
	PrintToPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromePrinter prints through a headless Chrome started per job
type ChromePrinter struct {
	// ExecPath overrides the Chrome binary; empty uses CHROME_PATH or the default lookup
	ExecPath string
	Timeout  time.Duration
	Verbose  bool
}

// NewChromePrinter returns a printer with the given binary and timeout.
// A zero timeout uses DefaultTimeout.
func NewChromePrinter(execPath string, timeout time.Duration, verbose bool) *ChromePrinter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ChromePrinter{ExecPath: execPath, Timeout: timeout, Verbose: verbose}
}

func (c *ChromePrinter) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	execPath := c.ExecPath
	if execPath == "" {
		execPath = os.Getenv("CHROME_PATH")
	}
	if execPath != "" {
		opts = append(opts, chromedp.ExecPath(execPath))
	}
	return opts
}

// PrintToPDF stages html in a temporary directory, opens it in a new browser
// context and prints it with backgrounds on US Letter paper. The staging
// directory is removed on every exit path.
func (c *ChromePrinter) PrintToPDF(ctx context.Context, html string) ([]byte, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	htmlPath, cleanup, err := stageHTML(html)
	if err != nil {
		return nil, &PrintError{Message: "failed to stage document", Cause: err}
	}
	defer cleanup()

	if c.Verbose {
		log.Printf("[PRINT] Starting headless browser (%d bytes of HTML)", len(html))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, c.allocatorOptions()...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	// An empty run only starts the browser and opens the target
	if err := chromedp.Run(browserCtx); err != nil {
		return nil, &ContextError{Message: "could not open a headless browser context", Cause: err}
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// Margins come from the document's @page rule so they repeat on every page
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &PrintError{Message: "failed to print document", Cause: err}
	}

	if c.Verbose {
		log.Printf("[PRINT] Printed PDF: %d bytes", len(pdf))
	}
	return pdf, nil
}

// stageHTML writes html to a fresh temporary directory. The returned cleanup
// removes the directory and is safe to call more than once.
func stageHTML(html string) (path string, cleanup func(), err error) {
	dir, err := os.MkdirTemp("", "resume-print-")
	if err != nil {
		return "", nil, err
	}
	cleanup = func() { _ = os.RemoveAll(dir) }

	path = filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte(html), 0o600); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
