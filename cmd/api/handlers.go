// cmd/api/handlers.go
// HTTP request handlers for the books resource. Each handler is a method on
// *applicationDependencies so it has access to the logger and the book store.
package main

import (
	"net/http"

	"github.com/mizzcode/bookshelf-api/internal/data"
)

// createBookHandler handles POST /books.
// Responds 201 with the new book's id, or 400 when the payload is invalid.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var input data.BookInput
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	bookID, err := app.models.Books.Insert(input)
	if err != nil {
		app.storeErrorResponse(w, r, "add book", err)
		return
	}

	app.logger.Debug("book created", "book_id", bookID)

	err = app.writeJSON(w, http.StatusCreated, envelope{
		"status":  statusSuccess,
		"message": "book added successfully",
		"data":    envelope{"bookId": bookID},
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBooksHandler handles GET /books.
// Supports ?name=, ?reading=0|1 and ?finished=0|1; only the first one present
// (in that order) is applied.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	filters := app.readFilters(r.URL.Query())
	books := app.models.Books.GetAll(filters)

	err := app.writeJSON(w, http.StatusOK, envelope{
		"status": statusSuccess,
		"data":   envelope{"books": books},
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /books/:bookId.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	book, err := app.models.Books.Get(app.readIDParam(r))
	if err != nil {
		app.storeErrorResponse(w, r, "", err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"status": statusSuccess,
		"data":   envelope{"book": book},
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateBookHandler handles PUT /books/:bookId.
// Every editable field is replaced; the payload is validated before the id
// is looked up, so a bad payload on an unknown id is a 400, not a 404.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID := app.readIDParam(r)

	var input data.BookInput
	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.models.Books.Update(bookID, input)
	if err != nil {
		app.storeErrorResponse(w, r, "update book", err)
		return
	}

	app.logger.Debug("book updated", "book_id", bookID)

	err = app.writeJSON(w, http.StatusOK, envelope{
		"status":  statusSuccess,
		"message": "book updated successfully",
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteBookHandler handles DELETE /books/:bookId.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID := app.readIDParam(r)

	err := app.models.Books.Delete(bookID)
	if err != nil {
		app.storeErrorResponse(w, r, "delete book", err)
		return
	}

	app.logger.Debug("book deleted", "book_id", bookID)

	err = app.writeJSON(w, http.StatusOK, envelope{
		"status":  statusSuccess,
		"message": "book deleted successfully",
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
