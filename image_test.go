package mipmap

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/bmp"
)

func TestImage_EncodePNG(t *testing.T) {
	assert := assert.New(t)

	icon := Render(48)
	var buf bytes.Buffer
	assert.NoError(Encode(&buf, icon, imaging.PNG))

	img, err := png.Decode(&buf)
	assert.NoError(err)
	assert.Equal(image.Rect(0, 0, 48, 48), img.Bounds())
	assert.Equal(icon.At(24, 24), imaging.Clone(img).At(24, 24))
	assert.Equal(icon.At(24, 14), imaging.Clone(img).At(24, 14))
}

func TestImage_EncodeBMP(t *testing.T) {
	assert := assert.New(t)

	icon := Render(72)
	var buf bytes.Buffer
	assert.NoError(Encode(&buf, icon, imaging.BMP))

	img, err := bmp.Decode(&buf)
	assert.NoError(err)
	assert.Equal(icon.Pix, imaging.Clone(img).Pix)
}

func TestImage_EncodeUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, Render(8), imaging.Format(-1))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Zero(t, buf.Len())
}

func TestImage_FileSinkSave(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "ic_launcher.png")
	icon := Render(96)
	assert.NoError(FileSink{}.Save(icon, path, imaging.PNG))

	img, err := decodeImg(path)
	assert.NoError(err)
	assert.Equal(icon.Pix, imaging.Clone(img).Pix)

	// Saving again truncates the previous content.
	assert.NoError(FileSink{}.Save(Render(8), path, imaging.PNG))
	img, err = decodeImg(path)
	assert.NoError(err)
	assert.Equal(8, img.Bounds().Dx())
}

func TestImage_FileSinkErrors(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	err := FileSink{}.Save(Render(8), filepath.Join(dir, "missing", "icon.png"), imaging.PNG)
	assert.Error(err)

	path := filepath.Join(dir, "icon.xyz")
	err = FileSink{}.Save(Render(8), path, imaging.Format(-1))
	assert.True(errors.Is(err, ErrUnsupportedFormat))
	_, statErr := os.Stat(path)
	assert.True(os.IsNotExist(statErr), "a failed save should not leave a file behind")
}

func TestImage_DecodeNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	assert.NoError(t, os.WriteFile(path, []byte("not an image at all"), 0644))

	_, err := decodeImg(path)
	assert.Error(t, err)
}
