package pdf

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/phrazzld/lesson-plan-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	textOpRegex = regexp.MustCompile(`BT (-?[\d.]+) (-?[\d.]+) Td \((.*?)\) Tj ET`)
	pageRegex   = regexp.MustCompile(`/Type /Page[^s]`)
)

type textOp struct {
	x, y string
	text string
}

// visibleText extracts the text operators of an uncompressed document.
func visibleText(t *testing.T, doc []byte) []textOp {
	t.Helper()
	var ops []textOp
	for _, m := range textOpRegex.FindAllSubmatch(doc, -1) {
		ops = append(ops, textOp{x: string(m[1]), y: string(m[2]), text: string(m[3])})
	}
	return ops
}

func uncompressed() Options {
	opts := DefaultOptions()
	opts.Compress = false
	return opts
}

func TestRender_Signature(t *testing.T) {
	t.Parallel()

	out, err := NewRenderer(nil, DefaultOptions()).Render(context.Background(), "Hello world")

	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output should start with the PDF signature")
	assert.True(t, bytes.HasSuffix(bytes.TrimSpace(out), []byte("%%EOF")))
}

func TestRender_LinesStartAtMargin(t *testing.T) {
	t.Parallel()

	out, err := NewRenderer(nil, uncompressed()).Render(context.Background(), "Objective\nMaterials\n\nAssessment")
	require.NoError(t, err)

	ops := visibleText(t, out)
	require.Len(t, ops, 4)

	assert.Equal(t, "40.00", ops[0].x)
	assert.Equal(t, "752.00", ops[0].y, "first baseline sits 40pt below the top of a 792pt page")
	assert.Equal(t, "737.60", ops[1].y, "lines are 14.4pt apart")
	assert.Equal(t, "Objective", ops[0].text)
	assert.Equal(t, "Materials", ops[1].text)
	assert.Equal(t, "", ops[2].text)
	assert.Equal(t, "Assessment", ops[3].text)
}

func TestRender_NormalizesLineEndingsAndTabs(t *testing.T) {
	t.Parallel()

	out, err := NewRenderer(nil, uncompressed()).Render(context.Background(), "a\r\nb\rc\td")
	require.NoError(t, err)

	ops := visibleText(t, out)
	require.Len(t, ops, 3)
	assert.Equal(t, "a", ops[0].text)
	assert.Equal(t, "b", ops[1].text)
	assert.Equal(t, "c    d", ops[2].text)
}

func TestRender_SameTextSameContent(t *testing.T) {
	t.Parallel()

	r := NewRenderer(nil, uncompressed())
	text := "Week 1: Photosynthesis\nWeek 2: Energy (review)"

	first, err := r.Render(context.Background(), text)
	require.NoError(t, err)
	second, err := r.Render(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, visibleText(t, first), visibleText(t, second))
	assert.NotEmpty(t, visibleText(t, first))
}

func TestRender_OverflowStaysOnOnePage(t *testing.T) {
	t.Parallel()

	lines := make([]string, 120)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}

	out, err := NewRenderer(nil, uncompressed()).Render(context.Background(), strings.Join(lines, "\n"))
	require.NoError(t, err)

	assert.Len(t, pageRegex.FindAll(out, -1), 1)

	ops := visibleText(t, out)
	require.Len(t, ops, 120, "overflowing lines are still drawn, off the page")
	assert.Equal(t, "line 53", ops[53].text)
	assert.Equal(t, "-11.20", ops[53].y)
}

func TestRender_Paginate(t *testing.T) {
	t.Parallel()

	lines := make([]string, 120)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}

	opts := uncompressed()
	opts.Paginate = true
	out, err := NewRenderer(nil, opts).Render(context.Background(), strings.Join(lines, "\n"))
	require.NoError(t, err)

	// 50 lines fit between the 40pt margins at 14.4pt leading.
	assert.Len(t, pageRegex.FindAll(out, -1), 3)

	ops := visibleText(t, out)
	require.Len(t, ops, 120)
	assert.Equal(t, "line 50", ops[50].text)
	assert.Equal(t, "752.00", ops[50].y, "a new page restarts at the top margin")
}

func TestRender_EscapesParentheses(t *testing.T) {
	t.Parallel()

	out, err := NewRenderer(nil, uncompressed()).Render(context.Background(), "Energy (review)")
	require.NoError(t, err)

	assert.Contains(t, string(out), `(Energy \(review\)) Tj`)
}

func TestRender_UnknownFont(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.FontFamily = "NoSuchFont"

	out, err := NewRenderer(nil, opts).Render(context.Background(), "Hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRenderFailed)
	assert.Nil(t, out)
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	opts := OptionsFromConfig(config.ExportConfig{
		FontFamily: "Courier",
		FontSize:   10,
		Margin:     72,
		Paginate:   true,
		Compress:   false,
	})

	assert.Equal(t, Options{FontFamily: "Courier", FontSize: 10, Margin: 72, Paginate: true}, opts)
}
