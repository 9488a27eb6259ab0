package service

import (
	"shuvoedward/Bible_reader/internal/data"
	"shuvoedward/Bible_reader/internal/schema"
)

// NoInput is accepted by procedures that take no arguments.
type NoInput struct{}

var NoInputSchema = schema.Object()

var (
	versionField  = schema.F("version", schema.String().Min(1))
	abbrevField   = schema.F("abbrev", schema.String().Min(1))
	chapterField  = schema.F("chapter", schema.Integer().Min(1))
	emailField    = schema.F("email", schema.String().Email())
	tokenField    = schema.F("token", schema.String().Min(1))
	passwordField = schema.F("password", schema.String().Min(6))
)

type BookInput struct {
	Abbrev string `json:"abbrev"`
}

var BookInputSchema = schema.Object(abbrevField)

type ChapterInput struct {
	Version string `json:"version"`
	Abbrev  string `json:"abbrev"`
	Chapter int    `json:"chapter"`
}

var ChapterInputSchema = schema.Object(versionField, abbrevField, chapterField)

type VerseInput struct {
	Version string `json:"version"`
	Abbrev  string `json:"abbrev"`
	Chapter int    `json:"chapter"`
	Number  int    `json:"number"`
}

var VerseInputSchema = ChapterInputSchema.Extend(
	schema.F("number", schema.Integer().Min(1)),
)

type RandomVerseInput struct {
	Version string `json:"version"`
}

var RandomVerseInputSchema = schema.Object(versionField)

type RandomVerseFromBookInput struct {
	Version string `json:"version"`
	Abbrev  string `json:"abbrev"`
}

var RandomVerseFromBookInputSchema = schema.Object(versionField, abbrevField)

type SearchInput struct {
	Version string `json:"version"`
	Search  string `json:"search"`
}

var SearchInputSchema = schema.Object(
	versionField,
	schema.F("search", schema.String().Min(1)),
)

type CreateUserInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Notifications *bool  `json:"notifications,omitempty"`
}

var CreateUserInputSchema = schema.Object(
	schema.F("name", schema.String()),
	emailField,
	passwordField,
	schema.F("notifications", schema.Bool().Optional()),
)

type GetUserInput struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

var GetUserInputSchema = schema.Object(emailField, tokenField)

type TokenInput struct {
	Token string `json:"token"`
}

var TokenInputSchema = schema.Object(tokenField)

type CredentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

var CredentialsInputSchema = schema.Object(
	emailField,
	passwordField,
)

type DeleteUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

var DeleteUserInputSchema = CredentialsInputSchema.Extend(tokenField)

type EmailInput struct {
	Email string `json:"email"`
}

var EmailInputSchema = schema.Object(emailField)

// RangeInput selects a metering window for the user owning Token.
type RangeInput struct {
	Range string `json:"range"`
	Token string `json:"token"`
}

var RangeInputSchema = schema.Object(
	schema.F("range", schema.Enum(data.Ranges...)),
	tokenField,
)

type GenerateTextInput struct {
	Prompt    string `json:"prompt"`
	ModelName string `json:"modelName,omitempty"`
}

var GenerateTextInputSchema = schema.Object(
	schema.F("prompt", schema.String().Min(1)),
	schema.F("modelName", schema.String().Optional()),
)

type ChatInput struct {
	Messages  []data.ChatMessage `json:"messages"`
	ModelName string             `json:"modelName,omitempty"`
}

var ChatInputSchema = schema.Object(
	schema.F("messages", schema.Array(data.ChatMessageSchema)),
	schema.F("modelName", schema.String().Optional()),
)

type AnalyzeImageInput struct {
	Prompt    string `json:"prompt"`
	ImageURL  string `json:"imageUrl"`
	ModelName string `json:"modelName,omitempty"`
}

var AnalyzeImageInputSchema = schema.Object(
	schema.F("prompt", schema.String().Min(1)),
	schema.F("imageUrl", schema.String().URL()),
	schema.F("modelName", schema.String().Optional()),
)

type CommentaryInput struct {
	Version  string       `json:"version"`
	Abbrev   string       `json:"abbrev"`
	BookName string       `json:"bookName"`
	Chapter  int          `json:"chapter"`
	Verses   []data.Verse `json:"verses"`
}

var CommentaryInputSchema = schema.Object(
	versionField,
	abbrevField,
	schema.F("bookName", schema.String().Min(1)),
	chapterField,
	schema.F("verses", schema.Array(data.VerseSchema)),
)
