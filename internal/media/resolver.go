// Package media normalizes product image references. A reference is either a
// plain URL, kept as-is, or inline image bytes, which are sniffed, size
// capped and re-emitted as a data URI.
package media

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/neonmart/neonmart-backend/pkg/config"
	pkgerrors "github.com/neonmart/neonmart-backend/pkg/errors"
)

var allowedImageTypes = []string{"image/png", "image/jpeg", "image/webp", "image/gif"}

// Resolver turns an image field from a product submission into a storable
// reference.
type Resolver struct {
	maxBytes int
}

func NewResolver(cfg config.MediaConfig) *Resolver {
	return &Resolver{maxBytes: cfg.MaxImageBytes}
}

// Resolve accepts an http(s) URL, a data URI or raw base64 image bytes and
// returns the reference to store. Inline bytes are validated against the
// approved image types and the configured size cap.
func (r *Resolver) Resolve(field string) (string, error) {
	clean := strings.TrimSpace(field)
	if clean == "" {
		return "", nil
	}
	if strings.HasPrefix(clean, "http://") || strings.HasPrefix(clean, "https://") {
		return clean, nil
	}

	payload := clean
	if strings.HasPrefix(clean, "data:") {
		_, rest, ok := strings.Cut(clean, ",")
		if !ok {
			return "", pkgerrors.New(pkgerrors.CodeValidation, "image data uri malformed")
		}
		payload = rest
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "image must be a url or base64 encoded")
	}
	if len(raw) > r.maxBytes {
		return "", pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("image exceeds the %d byte limit", r.maxBytes))
	}

	detected := mimetype.Detect(raw)
	if !isAllowedImage(detected.String()) {
		return "", pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("image type %s is not allowed, use %s",
				detected.String(), humanReadableList(allowedImageTypes)))
	}

	return fmt.Sprintf("data:%s;base64,%s", detected.String(),
		base64.StdEncoding.EncodeToString(raw)), nil
}

func isAllowedImage(mimeType string) bool {
	lowered := strings.ToLower(mimeType)
	for _, allowed := range allowedImageTypes {
		if lowered == allowed {
			return true
		}
	}
	return false
}

func humanReadableList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return fmt.Sprintf("%s or %s", items[0], items[1])
	default:
		return fmt.Sprintf("%s, or %s", strings.Join(items[:len(items)-1], ", "), items[len(items)-1])
	}
}
