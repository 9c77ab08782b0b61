package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	destdomain "github.com/albertomonterom/vinkula-backend/internal/destination/domain"
)

// imageFormats maps the recognized data-URI scheme prefixes to their
// content type and key extension. Anything else falls back to jpeg.
var imageFormats = []struct {
	prefix      string
	contentType string
	ext         string
}{
	{"data:image/png", "image/png", "png"},
	{"data:image/webp", "image/webp", "webp"},
}

const (
	fallbackContentType = "image/jpeg"
	fallbackExt         = "jpeg"
)

// ingestImages decodes each inline payload, derives a deterministic key
// from the destination id and the 1-based index, uploads sequentially and
// returns the public URLs in input order. Repeating an edit with the same
// index overwrites the object instead of accumulating orphans.
func (u *destinationUsecase) ingestImages(ctx context.Context, destinationID string, payloads []string) ([]string, error) {
	urls := make([]string, 0, len(payloads))
	for i, payload := range payloads {
		contentType, ext := classifyImage(payload)

		data, err := base64.StdEncoding.DecodeString(stripDataURIPrefix(payload))
		if err != nil {
			return nil, fmt.Errorf("%w: image %d is not valid base64", destdomain.ErrInvalidInput, i+1)
		}

		key := fmt.Sprintf("destinations/%s_%d.%s", destinationID, i+1, ext)
		url, err := u.objects.Put(ctx, key, data, contentType)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func classifyImage(payload string) (contentType, ext string) {
	for _, f := range imageFormats {
		if strings.HasPrefix(payload, f.prefix) {
			return f.contentType, f.ext
		}
	}
	return fallbackContentType, fallbackExt
}

func stripDataURIPrefix(payload string) string {
	if !strings.HasPrefix(payload, "data:") {
		return payload
	}
	if idx := strings.Index(payload, ";base64,"); idx >= 0 {
		return payload[idx+len(";base64,"):]
	}
	return payload
}
