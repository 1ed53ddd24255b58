package handler

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/blue-screen-of-app/internal/httputil"
	"github.com/blue-screen-of-app/internal/model"
	"github.com/blue-screen-of-app/internal/render"
	"github.com/blue-screen-of-app/internal/service"
)

const renderFailureText = "An error occurred while generating your blue screen. How ironic."

type PageHandler struct {
	svc      *service.BSODService
	renderer *render.Renderer
}

func NewPageHandler(svc *service.BSODService, renderer *render.Renderer) *PageHandler {
	return &PageHandler{svc: svc, renderer: renderer}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page := h.svc.Page(parsePageRequest(r.URL.Query()))

	body, err := h.renderer.Render(page)
	if err != nil {
		log.Error().Err(err).Str("style", string(page.Style)).Msg("failed to render page")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(renderFailureText))
		return
	}

	httputil.RespondHTML(w, http.StatusOK, body)
}

func parsePageRequest(q url.Values) service.PageRequest {
	req := service.PageRequest{
		Style: q.Get("style"),
		Code:  q.Get("code"),
		Override: model.Override{
			Description:     q.Get("message"),
			TechnicalDetail: q.Get("technical"),
		},
		QRURL: q.Get("qr"),
		Lang:  q.Get("lang"),
	}
	if q.Has("percentage") {
		p := q.Get("percentage")
		req.Override.Percentage = &p
	}
	return req
}

type RandomStyleHandler struct {
	svc *service.BSODService
}

func NewRandomStyleHandler(svc *service.BSODService) *RandomStyleHandler {
	return &RandomStyleHandler{svc: svc}
}

func (h *RandomStyleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := "/?" + url.Values{"style": {string(h.svc.RandomStyle())}}.Encode()
	http.Redirect(w, r, target, http.StatusFound)
}
