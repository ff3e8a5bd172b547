package mipmap

import (
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Verify checks that every icon of the given densities exists under baseDir,
// decodes as an image and has the density's dimensions.
func Verify(baseDir string, densities []Density, format imaging.Format) error {
	for _, d := range densities {
		for _, v := range Variants {
			path := filepath.Join(baseDir, d.Dir(), v.FileName(format))

			img, err := decodeImg(path)
			if err != nil {
				return err
			}
			b := img.Bounds()
			if b.Dx() != d.Size || b.Dy() != d.Size {
				return errors.Errorf("%s: expected %dx%d pixels, got %dx%d",
					path, d.Size, d.Size, b.Dx(), b.Dy())
			}
		}
	}
	return nil
}
