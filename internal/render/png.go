package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// ErrBufferSize reports an RGB buffer whose length does not match side².
var ErrBufferSize = errors.New("render: rgb buffer does not match side length")

// EncodePNG writes a side×side packed RGB buffer as PNG.
func EncodePNG(w io.Writer, rgb []byte, side int) error {
	if side <= 0 || len(rgb) != side*side*3 {
		return fmt.Errorf("%w: %d bytes for side %d", ErrBufferSize, len(rgb), side)
	}
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	FillRGBA(img.Pix, rgb)
	return png.Encode(w, img)
}

// SavePNG encodes the buffer to path, creating parent directories.
func SavePNG(path string, rgb []byte, side int) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err := EncodePNG(f, rgb, side); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
