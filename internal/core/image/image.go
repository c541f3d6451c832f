// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package image stores cover pictures as binary blobs and exchanges them as
// base64 data URLs over JSON.
package image

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/taibuivan/shelfwise/internal/platform/apperr"
)

// Image holds the front and optional side pictures of a book cover.
type Image struct {
	ID        int
	Front     []byte
	Side      []byte
	CreatedAt time.Time
}

// imageJSON is the wire form of [Image].
type imageJSON struct {
	ID        int       `json:"id"`
	Front     string    `json:"image_front"`
	Side      *string   `json:"image_side"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON renders both blobs as data URLs.
func (i Image) MarshalJSON() ([]byte, error) {
	out := imageJSON{ID: i.ID, Front: DataURL(i.Front), CreatedAt: i.CreatedAt}
	if len(i.Side) > 0 {
		side := DataURL(i.Side)
		out.Side = &side
	}
	return json.Marshal(out)
}

const (
	FieldFront = "image_front"
	FieldSide  = "image_side"
)

var (
	ErrNotFound = apperr.NotFound("Image")

	errNotBase64 = errors.New("not base64")
	errNotImage  = errors.New("not an image")
)

// DataURL encodes raw bytes as "data:<mime>;base64,<payload>".
// It returns an empty string for an empty blob.
func DataURL(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Decode accepts either a bare base64 payload or a data URL and returns the
// raw bytes, which must sniff as an image.
func Decode(encoded string) ([]byte, error) {
	payload := strings.TrimSpace(encoded)
	if strings.HasPrefix(payload, "data:") {
		_, after, found := strings.Cut(payload, ";base64,")
		if !found {
			return nil, errNotBase64
		}
		payload = after
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errNotBase64
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return nil, errNotImage
	}
	return data, nil
}
