package data

import "shuvoedward/Bible_reader/internal/schema"

// Response contracts of the content provider. The declarations mirror the
// types in this package; validation happens in package schema.
var (
	BookAbbrevSchema = schema.Object(
		schema.F("pt", schema.String()),
		schema.F("en", schema.String()),
	)

	BookSchema = schema.Object(
		schema.F("abbrev", BookAbbrevSchema),
		schema.F("author", schema.String()),
		schema.F("chapters", schema.Integer().Min(1)),
		schema.F("group", schema.String()),
		schema.F("name", schema.String()),
		schema.F("testament", schema.String()),
	)

	BooksSchema = schema.Array(BookSchema)

	BookDetailsSchema = BookSchema.Extend(
		schema.F("comment", schema.String().Optional()),
	)

	ChapterBookSchema = BookSchema.Extend(
		schema.F("version", schema.String()),
	)

	VerseSchema = schema.Object(
		schema.F("number", schema.Integer().Min(1)),
		schema.F("text", schema.String()),
	)

	ChapterSchema = schema.Object(
		schema.F("book", ChapterBookSchema),
		schema.F("chapter", schema.Object(
			schema.F("number", schema.Integer().Min(1)),
			schema.F("verses", schema.Integer().Min(0)),
		)),
		schema.F("verses", schema.Array(VerseSchema)),
	)

	SingleVerseSchema = schema.Object(
		schema.F("book", ChapterBookSchema),
		schema.F("chapter", schema.Integer().Min(1)),
		schema.F("number", schema.Integer().Min(1)),
		schema.F("text", schema.String()),
	)

	VersionSchema = schema.Object(
		schema.F("version", schema.String()),
		schema.F("verses", schema.Integer().Min(0)),
	)

	VersionsSchema = schema.Array(VersionSchema)

	SearchResultSchema = schema.Object(
		schema.F("occurrence", schema.Integer().Min(0)),
		schema.F("version", schema.String()),
		schema.F("verses", schema.Array(SingleVerseSchema)),
	)
)

// Identity and metering contracts.
var (
	UserSchema = schema.Object(
		schema.F("name", schema.String()),
		schema.F("email", schema.String().Email()),
		schema.F("token", schema.String()),
		schema.F("notifications", schema.Bool()),
	)

	UserWithLoginSchema = UserSchema.Extend(
		schema.F("lastLogin", schema.String()),
	)

	TokenRefreshSchema = schema.Object(
		schema.F("name", schema.String()),
		schema.F("email", schema.String().Email()),
		schema.F("token", schema.String()),
	)

	UserStatsSchema = schema.Object(
		schema.F("lastLogin", schema.String()),
		schema.F("requestsPerMonth", schema.Array(schema.Object(
			schema.F("range", schema.String()),
			schema.F("total", schema.Integer()),
		))),
	)

	MessageSchema = schema.Object(
		schema.F("msg", schema.String()),
	)

	RequestLogsSchema = schema.Array(schema.Object(
		schema.F("url", schema.String()),
		schema.F("date", schema.String()),
	))

	RequestsAmountSchema = schema.Object(
		schema.F("total", schema.Integer()),
		schema.F("requests", schema.Array(schema.Object(
			schema.F("_id", schema.String()),
			schema.F("count", schema.Integer()),
		))),
	)
)

// Generative-text contracts.
var (
	ChatMessageSchema = schema.Object(
		schema.F("role", schema.Enum(RoleUser, RoleModel)),
		schema.F("parts", schema.Array(schema.Object(
			schema.F("text", schema.String()),
		))),
	)

	GeneratedTextSchema = schema.Object(
		schema.F("text", schema.String()),
	)
)
