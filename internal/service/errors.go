package service

import "errors"

// Procedure-level errors. Field problems in inputs are reported as
// *schema.ValidationError; these cover everything else.
var (
	ErrInvalidResponse  = errors.New("upstream response did not match contract")
	ErrGenerationFailed = errors.New("failed to generate content")
	ErrNoUserMessage    = errors.New("no user message found")
	ErrImageFetch       = errors.New("failed to fetch image")
	ErrUnsupportedImage = errors.New("image type not supported")
)

// Generic messages returned to callers in place of provider error detail.
const (
	MsgGenerateFailed = "Failed to generate content from Gemini"
	MsgChatFailed     = "Failed to get response from Gemini chat"
	MsgImageFailed    = "Failed to analyze image with Gemini"

	StreamNote = "Generated content successfully. For actual streaming, implement with SSE or WebSockets."
)

// GenerationError carries the caller-facing message of a failed generative
// call. It matches ErrGenerationFailed with errors.Is.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string { return e.Message }

func (e *GenerationError) Unwrap() []error { return []error{ErrGenerationFailed, e.Err} }
