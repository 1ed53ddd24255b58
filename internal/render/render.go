package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/blue-screen-of-app/internal/model"
	"github.com/blue-screen-of-app/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// theme values are trusted constants and bypass CSS escaping.
type theme struct {
	Background template.CSS
	Font       template.CSS
	CSS        template.CSS
}

const modernCSS = `
    .container { max-width: 960px; padding: 10vh 8vw; }
    .face { font-size: 160px; line-height: 1; margin-bottom: 32px; }
    .description { font-size: 28px; line-height: 1.4; margin: 0 0 24px; }
    .percentage { font-size: 28px; margin: 0 0 40px; }
    .details { display: flex; gap: 24px; align-items: flex-start; }
    .info p { margin: 0 0 12px; font-size: 16px; }
    .stop-code { font-weight: bold; }`

const classicCSS = `
    .container { max-width: 900px; padding: 40px; font-size: 16px; line-height: 1.5; }
    .container p { margin: 0 0 18px; }
    .stop-code { font-weight: bold; }
    .qr { margin-top: 24px; }`

var themes = map[model.Style]theme{
	model.StyleWin10: {Background: "#0178D4", Font: `'Segoe UI', Arial, sans-serif`, CSS: modernCSS},
	model.StyleWin11: {Background: "#0067C0", Font: `'Segoe UI Variable', 'Segoe UI', sans-serif`, CSS: modernCSS},
	model.StyleWin7:  {Background: "#00579E", Font: `'Lucida Console', monospace`, CSS: classicCSS},
	model.StyleWinXP: {Background: "#0000AA", Font: `'Perfect DOS VGA 437', 'Courier New', monospace`, CSS: classicCSS},
}

// Renderer turns pages into HTML documents.
type Renderer struct {
	tmpl    *template.Template
	appName string
	qrSize  int
}

// NewRenderer parses the embedded templates.
func NewRenderer(appName string, qrSize int) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, appName: appName, qrSize: qrSize}, nil
}

type view struct {
	service.Page
	AppName string
	Theme   theme
	QRCode  template.URL
	QRSize  int
}

// Render executes the template for the page's style.
func (r *Renderer) Render(p service.Page) ([]byte, error) {
	th, ok := themes[p.Style]
	if !ok {
		th = themes[model.DefaultStyle]
	}

	name := "modern"
	if p.Style.Classic() {
		name = "classic"
	}

	v := view{
		Page:    p,
		AppName: r.appName,
		Theme:   th,
		// data: URLs are produced by the QR generator, never taken from the request.
		QRCode: template.URL(p.QRCode),
		QRSize: r.qrSize,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, v); err != nil {
		return nil, fmt.Errorf("render %s page: %w", p.Style, err)
	}
	return buf.Bytes(), nil
}
