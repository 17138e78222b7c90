// Package pdf draws plain text onto US Letter pages using the core PDF fonts.
//
// Text is written one input line per output line starting at the top-left
// margin. There is no word wrap. Lines that do not fit the page run off the
// bottom unless pagination is enabled.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/phrazzld/lesson-plan-api/internal/config"
)

// US Letter in points.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
)

// leadingFactor is the line spacing relative to the font size.
const leadingFactor = 1.2

// tabWidth is the number of spaces substituted for a tab character.
const tabWidth = 4

// ErrRenderFailed wraps any drawing or serialization failure.
var ErrRenderFailed = errors.New("failed to render PDF")

// Options configures the canvas.
type Options struct {
	FontFamily string
	FontSize   float64
	Margin     float64
	Paginate   bool
	Compress   bool
}

// DefaultOptions mirrors the export defaults: Helvetica 12pt at a 40pt margin.
func DefaultOptions() Options {
	return Options{
		FontFamily: "Helvetica",
		FontSize:   12,
		Margin:     40,
		Compress:   true,
	}
}

// OptionsFromConfig converts the export configuration section.
func OptionsFromConfig(cfg config.ExportConfig) Options {
	return Options{
		FontFamily: cfg.FontFamily,
		FontSize:   cfg.FontSize,
		Margin:     cfg.Margin,
		Paginate:   cfg.Paginate,
		Compress:   cfg.Compress,
	}
}

// Renderer turns text into PDF bytes. It holds no per-document state and is
// safe for concurrent use.
type Renderer struct {
	logger *slog.Logger
	opts   Options
}

// NewRenderer creates a Renderer.
func NewRenderer(logger *slog.Logger, opts Options) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger, opts: opts}
}

// Render allocates a fresh document, writes text line by line and returns the
// serialized PDF.
func (r *Renderer) Render(ctx context.Context, text string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetCompression(r.opts.Compress)
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(r.opts.Margin, r.opts.Margin, r.opts.Margin)
	doc.SetTitle("Lesson Plan", true)
	doc.SetCreator("lesson-plan-api", true)

	// Core fonts use cp1252; translate so that UTF-8 punctuation survives.
	translate := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	doc.SetFont(r.opts.FontFamily, "", r.opts.FontSize)

	leading := r.opts.FontSize * leadingFactor
	bottom := PageHeight - r.opts.Margin
	y := r.opts.Margin
	pages := 1

	for _, line := range splitLines(text) {
		if r.opts.Paginate && y > bottom {
			doc.AddPage()
			doc.SetFont(r.opts.FontFamily, "", r.opts.FontSize)
			y = r.opts.Margin
			pages++
		}
		doc.Text(r.opts.Margin, y, translate(line))
		y += leading
	}

	if doc.Err() {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	r.logger.DebugContext(ctx, "rendered PDF",
		"pages", pages,
		"bytes", buf.Len(),
		"overflow", !r.opts.Paginate && y-leading > bottom)

	return buf.Bytes(), nil
}

// splitLines normalizes line endings and tabs and splits text into lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))
	return strings.Split(text, "\n")
}
