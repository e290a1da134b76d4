// Package imageio reads cover images and writes stego images in lossless formats.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrLossyFormat is returned for output formats that would not keep low-order bits intact.
	ErrLossyFormat       = errors.New("lossy output format")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Format is a lossless output encoding.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// FormatFromPath picks the output format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "jpg", "jpeg", "webp", "gif":
		// gif quantizes colors to a palette
		return "", fmt.Errorf("%w: %s", ErrLossyFormat, ext)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Read decodes the image at path.
// Returns the image and the name of the decoder that handled it.
func Read(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	img, format, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, format, nil
}

// Write encodes img to path in the format named by its extension.
func Write(img image.Image, path string) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close image: %w", cerr)
		}
	}()
	w := bufio.NewWriter(f)
	if err := Encode(w, img, format); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case PNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}
