package qr

import (
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 150
	MinSize     = 64
	MaxSize     = 1024

	dataURLPrefix = "data:image/png;base64,"
)

// Generator renders scannable codes as embeddable PNG data URLs.
type Generator struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewGenerator creates a Generator producing images size pixels wide. Sizes
// outside [MinSize, MaxSize] fall back to DefaultSize.
func NewGenerator(size int) *Generator {
	if size < MinSize || size > MaxSize {
		size = DefaultSize
	}
	return &Generator{size: size, level: qrcode.Medium}
}

// PNG encodes target as a PNG image. The target is not validated as a URL.
func (g *Generator) PNG(target string) ([]byte, error) {
	if target == "" {
		return nil, fmt.Errorf("empty content")
	}

	code, err := qrcode.New(target, g.level)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	img, err := code.PNG(g.size)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}
	return img, nil
}

// Encode returns target as a data URL. When the code cannot be produced it
// returns false and callers omit the code from the page.
func (g *Generator) Encode(target string) (string, bool) {
	img, err := g.PNG(target)
	if err != nil {
		log.Warn().Err(err).Int("length", len(target)).Msg("qr code generation failed")
		return "", false
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(img), true
}
