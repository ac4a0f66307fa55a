// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the router wrapped in the
// middleware chain (outermost first):
//
//	recoverPanic → requestID → rateLimit → router
//
// Endpoints:
//
//	POST   /books          – add a book
//	GET    /books          – list books (?name=, ?reading=0|1, ?finished=0|1)
//	GET    /books/:bookId  – show a single book
//	PUT    /books/:bookId  – replace a book's editable fields
//	DELETE /books/:bookId  – delete a book
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodPost, "/books", app.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/books/:bookId", app.showBookHandler)
	router.HandlerFunc(http.MethodPut, "/books/:bookId", app.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/books/:bookId", app.deleteBookHandler)

	return app.recoverPanic(app.requestID(app.rateLimit(router)))
}
