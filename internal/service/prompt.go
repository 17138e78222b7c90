package service

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/phrazzld/lesson-plan-api/internal/domain"
)

//go:embed templates/lesson_plan.tmpl
var defaultPromptTemplate string

// promptData is the data passed to the prompt template. Absent request fields
// are already replaced by domain.MissingPlaceholder.
type promptData struct {
	Subject     string
	YearLevel   string
	LessonTopic string
	Weeks       string
	Keywords    string
}

// PromptBuilder renders lesson plan requests into model prompts.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses the template at path, or the built-in New Zealand
// Curriculum template when path is empty.
func NewPromptBuilder(path string) (*PromptBuilder, error) {
	content := defaultPromptTemplate
	name := "lesson_plan"
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v", ErrInvalidTemplate, path, err)
		}
		content = string(raw)
		name = path
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidTemplate, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build interpolates every field verbatim. Nothing is escaped.
func (b *PromptBuilder) Build(req domain.LessonPlanRequest) (string, error) {
	data := promptData{
		Subject:     req.Subject.String(),
		YearLevel:   req.YearLevel.String(),
		LessonTopic: req.LessonTopic.String(),
		Weeks:       req.Weeks.String(),
		Keywords:    req.Keywords.String(),
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
