package render

import (
	"strings"
	"testing"

	"github.com/blue-screen-of-app/internal/model"
	"github.com/blue-screen-of-app/internal/service"
)

func testPage(style model.Style) service.Page {
	return service.Page{
		ErrorRecord: model.ErrorRecord{
			StopCode:        "COFFEE_NOT_FOUND",
			Description:     "Please insert <coffee> & press any key",
			TechnicalDetail: "Memory dump: 0xC0FFEE",
			ScanPrompt:      "Scan for cat pictures",
			Percentage:      42,
		},
		Style:  style,
		QRCode: "data:image/png;base64,iVBORw0KGgo=",
		Lang:   "en",
	}
}

func TestRender(t *testing.T) {
	r, err := NewRenderer("Blue Screen of App", 150)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	for _, style := range model.Styles() {
		t.Run(string(style), func(t *testing.T) {
			out, err := r.Render(testPage(style))
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			html := string(out)

			for _, want := range []string{
				"<title>COFFEE_NOT_FOUND - Blue Screen of App</title>",
				"Please insert &lt;coffee&gt; &amp; press any key",
				"Memory dump: 0xC0FFEE",
				`src="data:image/png;base64,iVBORw0KGgo="`,
				string(themes[style].Background),
			} {
				if !strings.Contains(html, want) {
					t.Fatalf("expected output to contain %q", want)
				}
			}
			if strings.Contains(html, "ZgotmplZ") {
				t.Fatal("template rejected a value")
			}
		})
	}
}

func TestRenderLayouts(t *testing.T) {
	r, err := NewRenderer("Blue Screen of App", 150)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	modern, _ := r.Render(testPage(model.StyleWin11))
	if !strings.Contains(string(modern), "42</span>% complete") {
		t.Fatal("expected modern layout to show completion percentage")
	}

	classic, _ := r.Render(testPage(model.StyleWinXP))
	if !strings.Contains(string(classic), "*** STOP: Memory dump: 0xC0FFEE") {
		t.Fatal("expected classic layout to show STOP line")
	}
}

func TestRenderWithoutQRCode(t *testing.T) {
	r, err := NewRenderer("Blue Screen of App", 150)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	p := testPage(model.StyleWin10)
	p.QRCode = ""
	out, err := r.Render(p)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), `class="qr"`) {
		t.Fatal("expected QR element to be omitted")
	}
}
