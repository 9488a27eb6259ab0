package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"shuvoedward/Bible_reader/internal/data"
	"shuvoedward/Bible_reader/internal/schema"
)

// TextModel is the generative-text provider.
type TextModel interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
	Chat(ctx context.Context, model string, history []data.ChatMessage, message string) (string, error)
	GenerateWithImage(ctx context.Context, model, prompt, mimeType string, image []byte) (string, error)
}

// ImageFetcher resolves an image URL to bytes the model accepts.
type ImageFetcher interface {
	Fetch(ctx context.Context, imageURL string) (*Image, error)
}

// GeminiService proxies the generative-text procedures. Provider error
// detail is logged here and never returned to the caller.
type GeminiService struct {
	model  TextModel
	images ImageFetcher
	logger *slog.Logger
}

func NewGeminiService(model TextModel, images ImageFetcher, logger *slog.Logger) *GeminiService {
	return &GeminiService{
		model:  model,
		images: images,
		logger: logger,
	}
}

func (s *GeminiService) GenerateText(ctx context.Context, in GenerateTextInput) (*data.GeneratedText, error) {
	if err := schema.Check(GenerateTextInputSchema, in); err != nil {
		return nil, err
	}

	text, err := s.model.Generate(ctx, in.ModelName, in.Prompt)
	if err != nil {
		s.logger.Error("gemini generate", "model", in.ModelName, "error", err)
		return nil, &GenerationError{Message: MsgGenerateFailed, Err: err}
	}

	return &data.GeneratedText{Text: text}, nil
}

// StreamText performs a single generation; no incremental delivery exists.
func (s *GeminiService) StreamText(ctx context.Context, in GenerateTextInput) (*data.StreamedText, error) {
	generated, err := s.GenerateText(ctx, in)
	if err != nil {
		return nil, err
	}

	return &data.StreamedText{
		Success: true,
		Text:    generated.Text,
		Message: StreamNote,
	}, nil
}

// Chat replays every turn before the last user turn as history and sends
// that user turn. Model turns after it are ignored.
func (s *GeminiService) Chat(ctx context.Context, in ChatInput) (*data.GeneratedText, error) {
	if err := schema.Check(ChatInputSchema, in); err != nil {
		return nil, err
	}

	last := -1
	for i := len(in.Messages) - 1; i >= 0; i-- {
		if in.Messages[i].Role == data.RoleUser {
			last = i
			break
		}
	}
	if last < 0 {
		return nil, ErrNoUserMessage
	}

	history := in.Messages[:last]
	message := in.Messages[last].JoinedText()

	reply, err := s.model.Chat(ctx, in.ModelName, history, message)
	if err != nil {
		s.logger.Error("gemini chat", "model", in.ModelName, "turns", len(history), "error", err)
		return nil, &GenerationError{Message: MsgChatFailed, Err: err}
	}

	return &data.GeneratedText{Text: reply}, nil
}

func (s *GeminiService) AnalyzeImage(ctx context.Context, in AnalyzeImageInput) (*data.GeneratedText, error) {
	if err := schema.Check(AnalyzeImageInputSchema, in); err != nil {
		return nil, err
	}

	img, err := s.images.Fetch(ctx, in.ImageURL)
	if err != nil {
		s.logger.Warn("image fetch", "url", in.ImageURL, "error", err)
		return nil, err
	}

	text, err := s.model.GenerateWithImage(ctx, in.ModelName, in.Prompt, img.MimeType, img.Data)
	if err != nil {
		s.logger.Error("gemini image", "model", in.ModelName, "mime", img.MimeType, "error", err)
		return nil, &GenerationError{Message: MsgImageFailed, Err: err}
	}

	return &data.GeneratedText{Text: text}, nil
}

// Commentary generates study notes for one chapter. The result is tagged
// with the chapter that produced it.
func (s *GeminiService) Commentary(ctx context.Context, in CommentaryInput) (*data.Commentary, error) {
	if in.Verses == nil {
		in.Verses = []data.Verse{}
	}
	if err := schema.Check(CommentaryInputSchema, in); err != nil {
		return nil, err
	}

	text, err := s.model.Generate(ctx, "", commentaryPrompt(in))
	if err != nil {
		s.logger.Error("gemini commentary", "book", in.Abbrev, "chapter", in.Chapter, "error", err)
		return nil, &GenerationError{Message: MsgGenerateFailed, Err: err}
	}

	return &data.Commentary{
		Version: in.Version,
		Book:    in.Abbrev,
		Chapter: in.Chapter,
		Text:    text,
	}, nil
}

func commentaryPrompt(in CommentaryInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a short commentary on %s chapter %d (%s translation). ",
		in.BookName, in.Chapter, strings.ToUpper(in.Version))
	b.WriteString("Summarise the chapter, explain its historical context and point out key verses by number.")

	if len(in.Verses) > 0 {
		b.WriteString("\n\nText:\n")
		for _, v := range in.Verses {
			fmt.Fprintf(&b, "%d %s\n", v.Number, v.Text)
		}
	}

	return b.String()
}
