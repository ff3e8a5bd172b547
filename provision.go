package mipmap

import (
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Targets holds the destination paths of the icon variants of one density.
type Targets struct {
	Plain string
	Round string
}

// Path returns the destination of the given variant.
func (t Targets) Path(v Variant) string {
	if v == Round {
		return t.Round
	}
	return t.Plain
}

// Provision makes sure the density directory exists under baseDir
// and returns where the plain and round icons go.
func Provision(baseDir string, d Density, format imaging.Format) (Targets, error) {
	dir := filepath.Join(baseDir, d.Dir())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Targets{}, errors.Wrapf(err, "unable to create directory %s", dir)
	}

	return Targets{
		Plain: filepath.Join(dir, Plain.FileName(format)),
		Round: filepath.Join(dir, Round.FileName(format)),
	}, nil
}
