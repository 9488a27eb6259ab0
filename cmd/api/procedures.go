package main

import (
	"shuvoedward/Bible_reader/internal/rpc"
	"shuvoedward/Bible_reader/internal/service"
)

// newProcedureRouter exposes the proxy services as two namespaces. Account
// and metering calls live under bible, next to the content they meter.
func newProcedureRouter(s *service.Service) *rpc.Router {
	router := rpc.New()

	router.Register("bible",
		rpc.Query("getBooks", service.NoInputSchema, s.Bible.GetBooks).
			Describe("List every book in canonical order"),
		rpc.Query("getBook", service.BookInputSchema, s.Bible.GetBook).
			Describe("Details of one book"),
		rpc.Query("getChapter", service.ChapterInputSchema, s.Bible.GetChapter).
			Describe("All verses of one chapter"),
		rpc.Query("getVerse", service.VerseInputSchema, s.Bible.GetVerse).
			Describe("One verse"),
		rpc.Query("getRandomVerse", service.RandomVerseInputSchema, s.Bible.GetRandomVerse).
			Describe("A random verse from the whole Bible"),
		rpc.Query("getRandomVerseFromBook", service.RandomVerseFromBookInputSchema, s.Bible.GetRandomVerseFromBook).
			Describe("A random verse from one book"),
		rpc.Mutation("searchVerses", service.SearchInputSchema, s.Bible.SearchVerses).
			Describe("Search verses of a version by word"),
		rpc.Query("getVersions", service.NoInputSchema, s.Bible.GetVersions).
			Describe("Available translations"),

		rpc.Mutation("createUser", service.CreateUserInputSchema, s.User.CreateUser).
			Describe("Register an account with the content provider"),
		rpc.Query("getUser", service.GetUserInputSchema, s.User.GetUser).
			Describe("Account details, authorised by the user's token"),
		rpc.Query("getUserStats", service.TokenInputSchema, s.User.GetUserStats).
			Describe("Monthly request statistics of an account"),
		rpc.Mutation("updateToken", service.CredentialsInputSchema, s.User.UpdateToken).
			Describe("Issue a fresh token for an account"),
		rpc.Mutation("deleteUser", service.DeleteUserInputSchema, s.User.DeleteUser).
			Describe("Delete an account"),
		rpc.Mutation("resendPassword", service.EmailInputSchema, s.User.ResendPassword).
			Describe("Email a new password to an account"),

		rpc.Query("getRequests", service.RangeInputSchema, s.Request.GetRequests).
			Describe("Requests made in a day, week or month"),
		rpc.Query("getRequestsAmount", service.RangeInputSchema, s.Request.GetRequestsAmount).
			Describe("Request totals per endpoint in a day, week or month"),
	)

	router.Register("gemini",
		rpc.Mutation("generateText", service.GenerateTextInputSchema, s.Gemini.GenerateText).
			Describe("Generate text from a prompt"),
		rpc.Mutation("streamText", service.GenerateTextInputSchema, s.Gemini.StreamText).
			Describe("Generate text from a prompt, delivered in one piece"),
		rpc.Mutation("chat", service.ChatInputSchema, s.Gemini.Chat).
			Describe("Answer the last user turn of a conversation"),
		rpc.Mutation("analyzeImage", service.AnalyzeImageInputSchema, s.Gemini.AnalyzeImage).
			Describe("Answer a prompt about an image fetched from a URL"),
		rpc.Mutation("commentary", service.CommentaryInputSchema, s.Gemini.Commentary).
			Describe("Study commentary for one chapter"),
	)

	return router
}
