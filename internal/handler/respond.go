package handler

import (
	"net/http"

	"github.com/blue-screen-of-app/internal/httputil"
)

// ErrorResponse is the standard JSON error response body.
type ErrorResponse = httputil.ErrorResponse

// RespondJSON writes a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	httputil.RespondJSON(w, status, data)
}

// RespondError writes a JSON error response.
func RespondError(w http.ResponseWriter, status int, code, message string) {
	httputil.RespondError(w, status, code, message)
}

type routeNotFoundResponse struct {
	ErrorResponse
	Path string `json:"path"`
}

// NotFound answers requests for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusNotFound, routeNotFoundResponse{
		ErrorResponse: ErrorResponse{Error: "not_found", Message: "Route not found"},
		Path:          r.URL.Path,
	})
}

// MethodNotAllowed answers requests with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	RespondError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
}
