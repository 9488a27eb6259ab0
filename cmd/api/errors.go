package main

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"shuvoedward/Bible_reader/internal/reader"
	"shuvoedward/Bible_reader/internal/rpc"
	"shuvoedward/Bible_reader/internal/schema"
	"shuvoedward/Bible_reader/internal/service"
	"shuvoedward/Bible_reader/internal/upstream"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	env := envelope{"error": message}

	err := app.writeJSON(w, status, env, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	message := "the server encountered a problem and could not process your request"
	app.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	app.errorResponse(w, r, http.StatusNotFound, message)
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf("the %s method is not supported for this resource", r.Method)
	app.errorResponse(w, r, http.StatusMethodNotAllowed, message)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	app.errorResponse(w, r, http.StatusUnprocessableEntity, errors)
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	if retryAfter > 0 {
		seconds := int(math.Ceil(retryAfter.Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	message := "rate limit exceeded"
	app.errorResponse(w, r, http.StatusTooManyRequests, message)
}

func (app *application) badGatewayResponse(w http.ResponseWriter, r *http.Request, err error, message string) {
	app.logger.Warn("upstream failure", "method", r.Method, "uri", r.URL.RequestURI(), "error", err)
	app.errorResponse(w, r, http.StatusBadGateway, message)
}

// serviceErrorResponse maps an error from a procedure or the reader onto a
// response. A broken upstream contract is checked before input validation,
// as both carry a *schema.ValidationError.
func (app *application) serviceErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *schema.ValidationError
		generationErr *service.GenerationError
		upstreamErr   *upstream.Error
	)

	switch {
	case errors.Is(err, rpc.ErrNotFound), errors.Is(err, reader.ErrSessionNotFound):
		app.notFoundResponse(w, r)

	case errors.Is(err, rpc.ErrWrongKind):
		app.errorResponse(w, r, http.StatusMethodNotAllowed, err.Error())

	case errors.Is(err, service.ErrInvalidResponse):
		app.badGatewayResponse(w, r, err, "the upstream service returned an unexpected response")

	case errors.As(err, &validationErr):
		app.failedValidationResponse(w, r, validationErr.Map())

	case errors.As(err, &generationErr):
		app.badGatewayResponse(w, r, err, generationErr.Message)

	case errors.Is(err, service.ErrNoUserMessage), errors.Is(err, service.ErrUnsupportedImage),
		errors.Is(err, reader.ErrUnknownBook):
		app.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, service.ErrImageFetch):
		app.badGatewayResponse(w, r, err, "the image could not be fetched")

	case errors.As(err, &upstreamErr):
		if upstreamErr.NotFound() {
			app.notFoundResponse(w, r)
			return
		}
		app.badGatewayResponse(w, r, err, "the upstream service could not process the request")

	default:
		app.serverErrorResponse(w, r, err)
	}
}
