// Package tickets builds the scannable ticket a guest receives after registering:
// the QR payload identifying the guest/event pair and a signed check-in code.
package tickets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/sbilibin2017/gw-event-checkin/internal/models"
)

// DefaultQRSize is the rendered image edge in pixels.
const DefaultQRSize = 256

var ErrInvalidPayload = errors.New("invalid qr payload")

// QRPayload is the plaintext identity tuple embedded in the QR image.
// It carries no signature; check-in re-validates it against the registry.
type QRPayload struct {
	GuestID string `json:"guest_id"`
	EventID int64  `json:"event_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// Image is a rendered ticket ready to be attached to an email.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

// NewPayload builds the payload for a stored guest.
func NewPayload(g *models.GuestDB) QRPayload {
	return QRPayload{
		GuestID: g.GuestID.String(),
		EventID: g.EventID,
		Email:   g.Email,
		Name:    g.Name,
	}
}

// Codec renders payloads as PNG QR codes.
type Codec struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewCodec returns a codec producing size x size images with medium error recovery.
func NewCodec(size int) *Codec {
	if size <= 0 {
		size = DefaultQRSize
	}
	return &Codec{size: size, level: qrcode.Medium}
}

// Render encodes p as JSON and renders it as a PNG named after the guest id.
func (c *Codec) Render(p QRPayload) (*Image, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal qr payload: %w", err)
	}

	png, err := qrcode.Encode(string(data), c.level, c.size)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}

	return &Image{
		Filename:    fmt.Sprintf("guest_%s.png", p.GuestID),
		ContentType: "image/png",
		Data:        png,
	}, nil
}

// DecodePayload parses scanned QR text. Unknown fields and missing
// identity fields are rejected.
func DecodePayload(data []byte) (QRPayload, error) {
	var p QRPayload

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return QRPayload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if p.GuestID == "" || p.EventID == 0 || p.Email == "" {
		return QRPayload{}, ErrInvalidPayload
	}
	return p, nil
}
