package mipmap

import (
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/buzztimer/mipmap/utils"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned when an icon is requested in a format
// that has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Sink persists a rendered icon at a destination path.
// Implementations must be safe for concurrent use on distinct paths.
type Sink interface {
	Save(img image.Image, path string, format imaging.Format) error
}

// FileSink writes icons to the local file system.
type FileSink struct{}

var _ Sink = FileSink{}

// Save creates or truncates the file at path and encodes img into it.
// A partially written file is removed when encoding fails.
func (FileSink) Save(img image.Image, path string, format imaging.Format) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "unable to create the destination file %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "could not close %s", path)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err = Encode(f, img, format); err != nil {
		return errors.Wrapf(err, "could not encode %s", path)
	}
	return nil
}

// Encode writes img to w in the given format.
// PNG output uses the best compression level and is byte-for-byte
// reproducible for identical pixels.
func Encode(w io.Writer, img image.Image, format imaging.Format) error {
	switch format {
	case imaging.PNG:
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	case imaging.BMP:
		return bmp.Encode(w, img)
	case imaging.JPEG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(100))
	case imaging.GIF, imaging.TIFF:
		return imaging.Encode(w, img, format)
	default:
		return ErrUnsupportedFormat
	}
}

// decodeImg opens an image file and decodes it, making sure first
// that the content really is an image.
func decodeImg(src string) (image.Image, error) {
	ctype, err := utils.DetectContentType(src)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", src)
	}
	if !strings.Contains(ctype.(string), "image") {
		return nil, errors.Errorf("%s is not an image file (%v)", src, ctype)
	}

	img, err := imaging.Open(src)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode %s", src)
	}
	return img, nil
}
