package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MissingPlaceholder is the text substituted into prompts for fields the
// client did not send.
const MissingPlaceholder = "None"

// Export metadata returned alongside rendered lesson plans.
const (
	ExportFilename    = "lesson_plan.pdf"
	ExportContentType = "application/pdf"
)

// OptionalString is a request field that remembers whether it was supplied.
// It accepts any JSON scalar so that numeric fields such as weeks can be sent
// either as 2 or "2".
type OptionalString struct {
	Value string
	Set   bool
}

// Some returns a present OptionalString holding v.
func Some(v string) OptionalString {
	return OptionalString{Value: v, Set: true}
}

// String returns the value, or MissingPlaceholder when the field is absent.
func (o OptionalString) String() string {
	if !o.Set {
		return MissingPlaceholder
	}
	return o.Value
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*o = OptionalString{}
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		*o = Some(s)
		return nil
	}

	// Numbers, booleans and composite values are kept as written.
	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	*o = Some(compact.String())
	return nil
}

// MarshalJSON implements json.Marshaler. Absent values encode as null.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// LessonPlanRequest carries the parameters collected by the lesson plan form.
// None of the fields are required.
type LessonPlanRequest struct {
	Subject     OptionalString `json:"subject"`
	YearLevel   OptionalString `json:"year_level"`
	LessonTopic OptionalString `json:"lesson_topic"`
	Weeks       OptionalString `json:"weeks"`
	Keywords    OptionalString `json:"keywords"`
}

// GeneratedPlan is the model output for a single lesson plan request.
type GeneratedPlan struct {
	Text  string
	Model string
}

// ExportedDocument is a rendered lesson plan ready to be streamed to a client.
type ExportedDocument struct {
	Content     []byte
	Filename    string
	ContentType string
}

// NewExportedDocument wraps rendered PDF bytes with the export metadata.
func NewExportedDocument(content []byte) *ExportedDocument {
	return &ExportedDocument{
		Content:     content,
		Filename:    ExportFilename,
		ContentType: ExportContentType,
	}
}
