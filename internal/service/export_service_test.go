package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/lesson-plan-api/internal/domain"
	"github.com/phrazzld/lesson-plan-api/internal/mocks"
	"github.com/phrazzld/lesson-plan-api/internal/platform/pdf"
	"github.com/phrazzld/lesson-plan-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExportService_NilRenderer(t *testing.T) {
	t.Parallel()

	_, err := service.NewExportService(nil, nil)
	assert.Error(t, err)
}

func TestExport_EmptyTextSkipsRenderer(t *testing.T) {
	t.Parallel()

	renderer := &mocks.MockRenderer{Output: []byte("%PDF-1.3")}
	svc, err := service.NewExportService(renderer, nil)
	require.NoError(t, err)

	doc, err := svc.Export(context.Background(), "")

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domain.ErrEmptyLessonPlan)
	assert.Empty(t, renderer.Calls(), "renderer must not be invoked")
}

func TestExport_Success(t *testing.T) {
	t.Parallel()

	renderer := &mocks.MockRenderer{Output: []byte("%PDF-1.3 fake")}
	svc, err := service.NewExportService(renderer, nil)
	require.NoError(t, err)

	doc, err := svc.Export(context.Background(), "Hello world")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3 fake"), doc.Content)
	assert.Equal(t, "lesson_plan.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, []string{"Hello world"}, renderer.Calls())
}

func TestExport_RenderFailure(t *testing.T) {
	t.Parallel()

	renderer := &mocks.MockRenderer{Err: errors.Join(pdf.ErrRenderFailed, errors.New("undefined font"))}
	svc, err := service.NewExportService(renderer, nil)
	require.NoError(t, err)

	doc, err := svc.Export(context.Background(), "Hello world")

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, pdf.ErrRenderFailed)
	assert.NotErrorIs(t, err, domain.ErrEmptyLessonPlan)
}

func TestExport_WithPDFRenderer(t *testing.T) {
	t.Parallel()

	svc, err := service.NewExportService(pdf.NewRenderer(nil, pdf.DefaultOptions()), nil)
	require.NoError(t, err)

	doc, err := svc.Export(context.Background(), "Hello world")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF-")))
}
