// cmd/api/errors.go
// Error-response helpers. Client mistakes get a "fail" envelope; anything
// unexpected gets an "error" envelope and is logged.
package main

import (
	"log/slog"
	"net/http"

	domainerrors "github.com/mizzcode/bookshelf-api/internal/errors"
)

// logError logs an internal error at ERROR level with the request method, URL and id.
func (app *applicationDependencies) logError(r *http.Request, err error) {
	app.logger.Error(err.Error(),
		slog.String("request_method", r.Method),
		slog.String("request_url", r.URL.String()),
		slog.String("request_id", requestIDFromContext(r.Context())),
	)
}

// errorResponse sends a JSON envelope with the given status, HTTP code and message.
// It is the low-level building block used by all the specific error helpers below.
func (app *applicationDependencies) errorResponse(w http.ResponseWriter, r *http.Request, code int, status, message string) {
	env := envelope{"status": status, "message": message}
	err := app.writeJSON(w, code, env, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// failResponse sends a "fail" envelope for a request the client got wrong.
func (app *applicationDependencies) failResponse(w http.ResponseWriter, r *http.Request, code int, message string) {
	app.errorResponse(w, r, code, statusFail, message)
}

// serverErrorResponse logs err and sends a generic message to the client.
// Internal error details are never exposed.
func (app *applicationDependencies) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.errorResponse(w, r, http.StatusInternalServerError, statusError, "the server encountered a problem and could not process your request")
}

// storeErrorResponse maps an error returned by the book store onto a response.
// A non-empty operation prefixes the store message, e.g. "failed to update book. id not found".
func (app *applicationDependencies) storeErrorResponse(w http.ResponseWriter, r *http.Request, operation string, err error) {
	var domainErr *domainerrors.Error
	if !domainerrors.As(err, &domainErr) || domainErr.Code == domainerrors.CodeInternal {
		app.serverErrorResponse(w, r, err)
		return
	}

	message := domainErr.Message
	if operation != "" {
		message = operationMessage(operation, message)
	}
	app.failResponse(w, r, domainErr.HTTPStatus(), message)
}

// notFoundResponse sends a 404 Not Found error.
func (app *applicationDependencies) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.failResponse(w, r, http.StatusNotFound, "the requested resource could not be found")
}

// methodNotAllowedResponse sends a 405 Method Not Allowed error.
func (app *applicationDependencies) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := "the " + r.Method + " method is not supported for this resource"
	app.failResponse(w, r, http.StatusMethodNotAllowed, message)
}

// badRequestResponse sends a 400 Bad Request error with the error message from the caller.
func (app *applicationDependencies) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.failResponse(w, r, http.StatusBadRequest, err.Error())
}

// rateLimitExceededResponse sends a 429 Too Many Requests error.
func (app *applicationDependencies) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request) {
	app.failResponse(w, r, http.StatusTooManyRequests, "rate limit exceeded")
}
