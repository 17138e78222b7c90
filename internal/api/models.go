package api

// GenerateResponse is the body of a successful POST /generate.
type GenerateResponse struct {
	LessonPlan string `json:"lesson_plan"`
}

// DownloadRequest is the body of POST /download. A missing or null
// lesson_plan decodes to the empty string.
type DownloadRequest struct {
	LessonPlan string `json:"lesson_plan"`
}
