package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blue-screen-of-app/internal/model"
	"github.com/blue-screen-of-app/internal/service"
)

// --- Errors ---

type RandomErrorHandler struct {
	svc *service.BSODService
}

func NewRandomErrorHandler(svc *service.BSODService) *RandomErrorHandler {
	return &RandomErrorHandler{svc: svc}
}

func (h *RandomErrorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, h.svc.RandomError())
}

type ErrorByCodeHandler struct {
	svc *service.BSODService
}

func NewErrorByCodeHandler(svc *service.BSODService) *ErrorByCodeHandler {
	return &ErrorByCodeHandler{svc: svc}
}

type unknownCodeResponse struct {
	ErrorResponse
	AvailableCodes []string `json:"available_codes"`
}

func (h *ErrorByCodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.ErrorByCode(chi.URLParam(r, "code"))
	if err != nil {
		var svcErr *service.Error
		if errors.As(err, &svcErr) && svcErr.Kind == service.ErrNotFound {
			RespondJSON(w, http.StatusNotFound, unknownCodeResponse{
				ErrorResponse:  ErrorResponse{Error: svcErr.Code, Message: svcErr.Message},
				AvailableCodes: h.svc.StopCodes(),
			})
			return
		}
		service.RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, rec)
}

// --- Catalog ---

type CodesHandler struct {
	svc *service.BSODService
}

func NewCodesHandler(svc *service.BSODService) *CodesHandler {
	return &CodesHandler{svc: svc}
}

type CodesResponse struct {
	Codes []string `json:"codes"`
	Count int      `json:"count"`
}

func (h *CodesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	codes := h.svc.StopCodes()
	RespondJSON(w, http.StatusOK, CodesResponse{Codes: codes, Count: len(codes)})
}

type StylesResponse struct {
	Styles  []model.Style `json:"styles"`
	Default model.Style   `json:"default"`
}

// Styles lists the supported page styles.
func Styles(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, StylesResponse{
		Styles:  model.Styles(),
		Default: model.DefaultStyle,
	})
}
