package software

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/spaghettifunk/linmath/engine/core"
)

type Format string

const (
	FormatWebP Format = "webp"
	FormatPNG  Format = "png"
)

// ParseFormat accepts "webp" or "png" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatWebP, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("frame format %q: %w", s, core.ErrInvalidArgument)
	}
}

func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
	case FormatPNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
	default:
		return fmt.Errorf("frame format %q: %w", format, core.ErrInvalidArgument)
	}
	return nil
}

func FrameFileName(frame int, format Format) string {
	return fmt.Sprintf("frame_%04d.%s", frame, format)
}

/**
 * @brief Encodes img into dir, creating the directory if needed.
 *
 * @return The path of the written file.
 */
func WriteFrame(dir string, frame int, img image.Image, format Format) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, FrameFileName(frame, format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create frame: %w", err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close frame: %w", err)
	}
	return path, nil
}
