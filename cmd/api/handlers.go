package main

import "shuvoedward/Bible_reader/internal/service"

// Handlers contains all HTTP handlers of the API entry point
type Handlers struct {
	RPC    *RPCHandler
	Reader *ReaderHandler
}

// NewHandlers creates all HTTP handlers
// Handlers are tied to HTTP - not reusable like services
func NewHandlers(app *application, services *service.Service) *Handlers {
	return &Handlers{
		RPC:    NewRPCHandler(app, app.procedures),
		Reader: NewReaderHandler(app, services.Bible, services.Gemini),
	}
}
