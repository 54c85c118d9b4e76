package analysis

import (
	"BulkBlitz-Backend/domain"
	"BulkBlitz-Backend/pkg/completion"
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
)

// MaxImageEdge bounds the longest side of images sent to the vision model.
const MaxImageEdge = 1024

// DecodeImage accepts a data URL ("data:image/png;base64,...") or bare base64.
func DecodeImage(encoded string) (completion.Image, error) {
	encoded = strings.TrimSpace(encoded)
	mimeType := ""

	if strings.HasPrefix(encoded, "data:") {
		header, payload, found := strings.Cut(encoded, ",")
		if !found || !strings.HasSuffix(header, ";base64") {
			return completion.Image{}, domain.ErrInvalidImage
		}
		mimeType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		encoded = payload
	}

	if encoded == "" {
		return completion.Image{}, domain.ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "="))
		if err != nil {
			return completion.Image{}, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
		}
	}
	if len(data) == 0 {
		return completion.Image{}, domain.ErrInvalidImage
	}

	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(data)
	}

	return completion.Image{MIMEType: mimeType, Data: data}, nil
}

// PrepareImage shrinks oversized images to MaxImageEdge and re-encodes them as
// JPEG. Images it cannot decode are returned unchanged.
func PrepareImage(img completion.Image) completion.Image {
	decoded, err := imaging.Decode(bytes.NewReader(img.Data), imaging.AutoOrientation(true))
	if err != nil {
		return img
	}

	bounds := decoded.Bounds()
	if bounds.Dx() <= MaxImageEdge && bounds.Dy() <= MaxImageEdge {
		return img
	}

	resized := imaging.Fit(decoded, MaxImageEdge, MaxImageEdge, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return img
	}

	return completion.Image{MIMEType: "image/jpeg", Data: buf.Bytes()}
}
