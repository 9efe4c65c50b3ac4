// Package imageprocessor scales uploaded images down to the thumbnail
// variants the app lists render (vendor cards, category tiles, sliders).
package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// thumbnail bounding box. The aspect ratio of the source is kept, so
// one side may come out smaller.
const (
	ThumbWidth  = 400
	ThumbHeight = 400
)

type Processor struct {
	quality int // JPEG quality, 1-100
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// CanProcess reports whether the content type is one the processor can
// decode. Uploads of other types are stored as-is without a thumbnail.
func CanProcess(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png":
		return true
	default:
		return false
	}
}

// Thumbnail decodes the image and re-encodes it in its original format,
// scaled to fit the thumbnail bounding box.
func (p *Processor) Thumbnail(reader io.Reader) (io.Reader, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	scaled := scaleToFit(img, ThumbWidth, ThumbHeight)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: p.quality})
	case "png":
		err = png.Encode(&buf, scaled)
	default:
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return &buf, nil
}

// scaleToFit fits the image inside maxWidth x maxHeight keeping the
// aspect ratio. Images already inside the box pass through unscaled.
func scaleToFit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	newWidth := maxWidth
	newHeight := maxHeight
	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
