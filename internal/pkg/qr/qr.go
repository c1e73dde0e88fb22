// Package qr renders employee credential tokens as QR code images.
package qr

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type Generator interface {
	// PNG encodes the payload as a QR code PNG.
	PNG(payload string) ([]byte, error)
	// DataURI encodes the payload as a base64 PNG data URI, ready to drop
	// into an <img src> attribute.
	DataURI(payload string) (string, error)
}

type generator struct {
	size int
}

func NewGenerator() Generator {
	return &generator{size: defaultSize}
}

func (g *generator) PNG(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, g.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

func (g *generator) DataURI(payload string) (string, error) {
	png, err := g.PNG(payload)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
