// cmd/api/helpers.go
// General-purpose helpers for reading requests and writing responses.
// Error-response helpers live in errors.go.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/julienschmidt/httprouter"

	"github.com/mizzcode/bookshelf-api/internal/data"
)

// Values of the "status" key in every response body.
const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

// envelope is the top-level JSON wrapper used for all API responses, e.g.
// {"status": "success", "data": {"bookId": "..."}}.
type envelope map[string]any

// readIDParam extracts the ":bookId" URL parameter added by httprouter.
func (app *applicationDependencies) readIDParam(r *http.Request) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName("bookId")
}

// readBoolFlag reads a "1"/"0" query parameter. Any other value, including
// an absent key, yields nil.
func (app *applicationDependencies) readBoolFlag(qs url.Values, key string) *bool {
	var b bool
	switch qs.Get(key) {
	case "1":
		b = true
	case "0":
		b = false
	default:
		return nil
	}
	return &b
}

// readFilters builds list filters from the query string. A name key that is
// present filters even when its value is empty.
func (app *applicationDependencies) readFilters(qs url.Values) data.Filters {
	var filters data.Filters
	if qs.Has("name") {
		name := qs.Get("name")
		filters.Name = &name
	}
	filters.Reading = app.readBoolFlag(qs, "reading")
	filters.Finished = app.readBoolFlag(qs, "finished")
	return filters
}

// writeJSON marshals data to indented JSON, applies any custom headers,
// sets Content-Type to "application/json", writes the status code, and
// streams the body to the client.
func (app *applicationDependencies) writeJSON(w http.ResponseWriter, status int, env envelope, headers http.Header) error {
	js, err := json.MarshalIndent(env, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
	return nil
}

// readJSON decodes a single JSON value from the request body into dst.
// It enforces a 1 MB size limit and ensures the body contains exactly one
// JSON value. Unknown fields are ignored.
func (app *applicationDependencies) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	const maxBytes = 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		default:
			return err
		}
	}

	// Ensure there is no second JSON value in the body.
	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

// operationMessage prefixes a store error message with the operation that failed,
// e.g. "failed to add book. missing name".
func operationMessage(operation, reason string) string {
	return "failed to " + operation + ". " + reason
}
