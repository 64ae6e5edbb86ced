// Package screenshot saves the rendered frame to disk.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
)

// Supported formats.
const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// Capture writes frames as timestamped image files.
type Capture struct {
	outputDir string
	format    string
	now       func() time.Time
}

// New creates a capture writing files of the given format into outputDir.
func New(outputDir, format string) (*Capture, error) {
	switch format {
	case FormatPNG, FormatBMP:
	default:
		return nil, fmt.Errorf("unsupported screenshot format %q", format)
	}
	return &Capture{outputDir: outputDir, format: format, now: time.Now}, nil
}

// Filename returns the path the next capture would be written to.
func (c *Capture) Filename() string {
	timestamp := c.now().Format("2006-01-02_15-04-05.000")
	return filepath.Join(c.outputDir, fmt.Sprintf("screenshot_%s.%s", timestamp, c.format))
}

// FromPixels builds an image from bottom-up RGBA rows, as returned by
// glReadPixels, flipping it to top-down order.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// Save flips and encodes raw pixels and returns the written file name.
func (c *Capture) Save(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}

	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := c.encode(file, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", c.format, err)
	}
	return filename, nil
}

func (c *Capture) encode(w io.Writer, img image.Image) error {
	if c.format == FormatBMP {
		return bmp.Encode(w, img)
	}
	return png.Encode(w, img)
}
