// Package imaging inspects uploaded images before they are sent anywhere.
package imaging

import (
	"bytes"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrUnsupportedImage is returned for data no registered decoder understands.
var ErrUnsupportedImage = errors.New("unsupported or corrupt image")

// Info describes an inspected image.
type Info struct {
	Format      string // Decoder name, e.g. "jpeg".
	ContentType string
	Width       int
	Height      int
}

var contentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"webp": "image/webp",
}

// Inspect reads only the image header, so it is cheap even for large uploads.
func Inspect(data []byte) (*Info, error) {
	if len(data) == 0 {
		return nil, errors.WithStack(ErrUnsupportedImage)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(ErrUnsupportedImage, err.Error())
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Wrapf(ErrUnsupportedImage, "invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}

	contentType, ok := contentTypes[format]
	if !ok {
		contentType = "application/octet-stream"
	}

	return &Info{
		Format:      format,
		ContentType: contentType,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

// IsUniform decodes the full image and reports whether every pixel has the same color.
// A uniform image cannot contain a face.
func IsUniform(data []byte) (bool, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return false, errors.Wrap(ErrUnsupportedImage, err.Error())
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return true, nil
	}

	r0, g0, b0, a0 := img.At(bounds.Min.X, bounds.Min.Y).RGBA()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if r != r0 || g != g0 || b != b0 || a != a0 {
				return false, nil
			}
		}
	}

	return true, nil
}
