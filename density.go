package mipmap

import (
	"strings"

	"github.com/disintegration/imaging"
)

// Density is an Android display density bucket and the launcher icon size it needs.
type Density struct {
	Name string
	Size int
}

// Densities is the fixed table of density buckets, from the smallest to the largest.
var Densities = []Density{
	{Name: "mdpi", Size: 48},
	{Name: "hdpi", Size: 72},
	{Name: "xhdpi", Size: 96},
	{Name: "xxhdpi", Size: 144},
	{Name: "xxxhdpi", Size: 192},
}

// Dir returns the resource directory name of the density, e.g. "mipmap-hdpi".
func (d Density) Dir() string {
	return "mipmap-" + d.Name
}

// Lookup returns the density bucket with the given name.
func Lookup(name string) (Density, bool) {
	for _, d := range Densities {
		if d.Name == name {
			return d, true
		}
	}
	return Density{}, false
}

// Variant is one of the launcher icon files written for every density.
type Variant string

const (
	Plain Variant = "ic_launcher"
	Round Variant = "ic_launcher_round"
)

// Variants lists the icon files written per density.
// Both variants are encoded from the same render.
var Variants = []Variant{Plain, Round}

// FileName returns the variant's file name for the given image format.
func (v Variant) FileName(format imaging.Format) string {
	return string(v) + "." + extension(format)
}

// extension maps an image format to its canonical file extension.
func extension(format imaging.Format) string {
	switch format {
	case imaging.JPEG:
		return "jpg"
	case imaging.TIFF:
		return "tif"
	default:
		return strings.ToLower(format.String())
	}
}
