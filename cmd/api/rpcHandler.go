package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"shuvoedward/Bible_reader/internal/rpc"
)

type ProcedureCaller interface {
	Call(ctx context.Context, name string, kind rpc.Kind, raw []byte) (any, error)
	Directory() []rpc.Entry
}

type RPCHandler struct {
	app        *application
	procedures ProcedureCaller
}

func NewRPCHandler(app *application, procedures ProcedureCaller) *RPCHandler {
	return &RPCHandler{
		app:        app,
		procedures: procedures,
	}
}

func (h *RPCHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/v1/rpc", h.Directory)
	router.HandlerFunc(http.MethodGet, "/v1/rpc/:procedure", h.app.generationRateLimit(h.Query))
	router.HandlerFunc(http.MethodPost, "/v1/rpc/:procedure", h.app.generationRateLimit(h.Mutation))
}

// @Summary List procedures
// @Description Every procedure with its kind and the shape of its input.
// @Tags RPC
// @Produce json
// @Success 200 {object} object{procedures=[]rpc.Entry}
// @Router /rpc [get]
func (h *RPCHandler) Directory(w http.ResponseWriter, r *http.Request) {
	err := h.app.writeJSON(w, http.StatusOK, envelope{"procedures": h.procedures.Directory()}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Call a query procedure
// @Description Runs a read-only procedure such as bible.getChapter. The input is URL-encoded JSON.
// @Tags RPC
// @Produce json
// @Param procedure path string true "Procedure name, e.g. bible.getChapter"
// @Param input query string false "JSON input, e.g. {\"version\":\"nvi\",\"abbrev\":\"gn\",\"chapter\":1}"
// @Success 200 {object} object{result=object}
// @Failure 404 {object} object{error=string} "Unknown procedure or upstream 404"
// @Failure 405 {object} object{error=string} "Procedure is a mutation"
// @Failure 422 {object} object{error=object} "Input failed validation"
// @Failure 502 {object} object{error=string} "Upstream failure"
// @Router /rpc/{procedure} [get]
func (h *RPCHandler) Query(w http.ResponseWriter, r *http.Request) {
	var raw []byte
	if input := r.URL.Query().Get("input"); input != "" {
		raw = []byte(input)
	}

	h.call(w, r, rpc.KindQuery, raw)
}

// @Summary Call a mutation procedure
// @Description Runs a procedure with side effects or a costly upstream call, such as gemini.chat. The body is the input.
// @Tags RPC
// @Accept json
// @Produce json
// @Param procedure path string true "Procedure name, e.g. gemini.generateText"
// @Param input body object false "Procedure input"
// @Success 200 {object} object{result=object}
// @Failure 400 {object} object{error=string} "Body is not JSON"
// @Failure 404 {object} object{error=string} "Unknown procedure or upstream 404"
// @Failure 405 {object} object{error=string} "Procedure is a query"
// @Failure 422 {object} object{error=object} "Input failed validation"
// @Failure 429 {object} object{error=string} "Generative rate limit exceeded"
// @Failure 502 {object} object{error=string} "Upstream failure"
// @Router /rpc/{procedure} [post]
func (h *RPCHandler) Mutation(w http.ResponseWriter, r *http.Request) {
	raw, err := h.app.readRawJSON(w, r)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	h.call(w, r, rpc.KindMutation, raw)
}

func (h *RPCHandler) call(w http.ResponseWriter, r *http.Request, kind rpc.Kind, raw []byte) {
	name := httprouter.ParamsFromContext(r.Context()).ByName("procedure")

	result, err := h.procedures.Call(r.Context(), name, kind, raw)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			h.app.logger.Info("procedure abandoned by client", "procedure", name)
			return
		}
		h.app.serviceErrorResponse(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"result": result}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}
