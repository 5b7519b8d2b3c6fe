package book

import (
	"errors"
	"log/slog"
	"net/http"

	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/{bookId}", h.Get)
	mux.HandleFunc("PUT /books/{bookId}", h.Update)
	mux.HandleFunc("DELETE /books/{bookId}", h.Delete)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if !h.decode(w, r, &in, "Failed to add book. Invalid request body") {
		return
	}

	id, err := h.service.Create(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingName):
			httpx.JSONFail(w, http.StatusBadRequest, "Failed to add book. Please provide the book name")
		case errors.Is(err, ErrReadPageExceedsPageCount):
			httpx.JSONFail(w, http.StatusBadRequest, "Failed to add book. readPage must not be greater than pageCount")
		default:
			h.serverError(r, err)
			httpx.JSONError(w, http.StatusInternalServerError, "Failed to add book")
		}
		return
	}

	httpx.JSONSuccess(w, http.StatusCreated, "Book added successfully", map[string]string{"bookId": id})
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context(), FilterFromQuery(r.URL.Query()))
	if err != nil {
		h.serverError(r, err)
		httpx.JSONError(w, http.StatusInternalServerError, "Failed to list books")
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{"books": books})
}

// Get handles GET /books/{bookId}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.Get(r.Context(), r.PathValue("bookId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, "Book not found")
			return
		}
		h.serverError(r, err)
		httpx.JSONError(w, http.StatusInternalServerError, "Failed to get book")
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{"book": b})
}

// Update handles PUT /books/{bookId}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in Input
	if !h.decode(w, r, &in, "Failed to update book. Invalid request body") {
		return
	}

	if _, err := h.service.Update(r.Context(), r.PathValue("bookId"), in); err != nil {
		switch {
		case errors.Is(err, ErrMissingName):
			httpx.JSONFail(w, http.StatusBadRequest, "Failed to update book. Please provide the book name")
		case errors.Is(err, ErrReadPageExceedsPageCount):
			httpx.JSONFail(w, http.StatusBadRequest, "Failed to update book. readPage must not be greater than pageCount")
		case errors.Is(err, ErrNotFound):
			httpx.JSONFail(w, http.StatusNotFound, "Failed to update book. Id not found")
		default:
			h.serverError(r, err)
			httpx.JSONError(w, http.StatusInternalServerError, "Failed to update book")
		}
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "Book updated successfully", nil)
}

// Delete handles DELETE /books/{bookId}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("bookId")); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, http.StatusNotFound, "Failed to delete book. Id not found")
			return
		}
		h.serverError(r, err)
		httpx.JSONError(w, http.StatusInternalServerError, "Failed to delete book")
		return
	}
	httpx.JSONSuccess(w, http.StatusOK, "Book deleted successfully", nil)
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, dst *Input, failMsg string) bool {
	err := httpx.DecodeJSON(r, dst)
	if err == nil {
		return true
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		httpx.JSONFail(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return false
	}
	httpx.JSONFail(w, http.StatusBadRequest, failMsg)
	return false
}

func (h *HTTPHandler) serverError(r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "book request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", httpx.RequestIDFrom(r),
		"error", err,
	)
}
