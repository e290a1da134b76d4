package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 255 / width), uint8(y * 255 / height), uint8(x ^ y), 255})
		}
	}
	return img
}

func TestFormatFromPath(t *testing.T) {
	test := []struct {
		path    string
		exp     Format
		wantErr error
	}{
		{"out.png", PNG, nil},
		{"OUT.PNG", PNG, nil},
		{"a/b.bmp", BMP, nil},
		{"x.tif", TIFF, nil},
		{"x.tiff", TIFF, nil},
		{"x.jpg", "", ErrLossyFormat},
		{"x.jpeg", "", ErrLossyFormat},
		{"x.webp", "", ErrLossyFormat},
		{"x.gif", "", ErrLossyFormat},
		{"x.txt", "", ErrUnsupportedFormat},
		{"noext", "", ErrUnsupportedFormat},
	}
	for _, tt := range test {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.exp, got)
		})
	}
}

func TestWriteRead(t *testing.T) {
	src := createImage(23, 17)
	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.bmp", "out.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Write(src, path))

			img, _, err := Read(path)
			require.NoError(t, err)
			require.Equal(t, src.Bounds(), img.Bounds())
			for y := range 17 {
				for x := range 23 {
					got := color.NRGBAModel.Convert(img.At(x, y))
					if !assert.Equal(t, src.NRGBAAt(x, y), got, "pixel (%d,%d)", x, y) {
						return
					}
				}
			}
		})
	}
}

func TestWriteRejectsLossy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	err := Write(createImage(2, 2), path)
	assert.ErrorIs(t, err, ErrLossyFormat)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be created")
}

func TestReadJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, createImage(8, 8), &jpeg.Options{Quality: 100}))
	path := filepath.Join(t.TempDir(), "in.jpg")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	img, format, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()
	_, _, err := Read(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, _, err = Read(path)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestEncodeUnknown(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, createImage(1, 1), Format("jpeg")), ErrUnsupportedFormat)
}
