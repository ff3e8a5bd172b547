package mipmap

import (
	"image"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// recordingSink keeps every saved image in memory.
type recordingSink struct {
	mu    sync.Mutex
	saved map[string]image.Image
}

func (s *recordingSink) Save(img image.Image, path string, format imaging.Format) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saved == nil {
		s.saved = make(map[string]image.Image)
	}
	s.saved[path] = img
	return nil
}

// failingSink refuses to write the icons of a single density.
type failingSink struct {
	density string
	err     error
}

func (s failingSink) Save(img image.Image, path string, format imaging.Format) error {
	if filepath.Base(filepath.Dir(path)) == "mipmap-"+s.density {
		return s.err
	}
	return FileSink{}.Save(img, path, format)
}

func TestGenerator_WritesAllIcons(t *testing.T) {
	assert := assert.New(t)
	base := t.TempDir()

	results, err := NewGenerator(base).Generate()
	assert.NoError(err)
	assert.Len(results, len(Densities))

	files := 0
	err = filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
		if err == nil && info.Mode().IsRegular() {
			files++
		}
		return err
	})
	assert.NoError(err)
	assert.Equal(10, files)

	for i, res := range results {
		assert.NoError(res.Err)
		assert.Equal(Densities[i], res.Density)

		plain, err := os.ReadFile(res.Targets.Plain)
		assert.NoError(err)
		round, err := os.ReadFile(res.Targets.Round)
		assert.NoError(err)
		assert.Equal(plain, round, "%s variants should be identical", res.Density.Name)
	}

	assert.NoError(Verify(base, Densities, imaging.PNG))
}

func TestGenerator_SameRenderForBothVariants(t *testing.T) {
	assert := assert.New(t)

	sink := &recordingSink{}
	gen := NewGenerator(t.TempDir())
	gen.Sink = sink
	gen.Workers = 1

	results, err := gen.Generate()
	assert.NoError(err)
	assert.Len(sink.saved, 2*len(Densities))

	for _, res := range results {
		plain := sink.saved[res.Targets.Plain]
		round := sink.saved[res.Targets.Round]
		assert.Same(plain, round)
		assert.Equal(res.Density.Size, plain.Bounds().Dx())
	}
}

func TestGenerator_Workers(t *testing.T) {
	for _, workers := range []int{-1, 0, 1, 3, maxWorkers + 5} {
		gen := NewGenerator(t.TempDir())
		gen.Workers = workers

		results, err := gen.Generate()
		assert.NoError(t, err, "%d workers", workers)
		assert.Len(t, results, len(Densities))
	}
}

func TestGenerator_CustomDensities(t *testing.T) {
	assert := assert.New(t)
	base := t.TempDir()

	xhdpi, _ := Lookup("xhdpi")
	gen := NewGenerator(base)
	gen.Densities = []Density{xhdpi}

	results, err := gen.Generate()
	assert.NoError(err)
	assert.Len(results, 1)
	assert.NoError(Verify(base, gen.Densities, imaging.PNG))

	_, err = os.Stat(filepath.Join(base, "mipmap-mdpi"))
	assert.True(os.IsNotExist(err))
}

func TestGenerator_WriteFailure(t *testing.T) {
	assert := assert.New(t)

	writeErr := errors.New("disk full")
	gen := NewGenerator(t.TempDir())
	gen.Sink = failingSink{density: "xhdpi", err: writeErr}

	results, err := gen.Generate()
	assert.ErrorIs(err, writeErr)
	assert.Len(results, len(Densities))
	assert.ErrorIs(results[2].Err, writeErr)
	assert.Equal("xhdpi", results[2].Density.Name)
}

func TestGenerator_UnwritableBase(t *testing.T) {
	base := filepath.Join(t.TempDir(), "res")
	assert.NoError(t, os.WriteFile(base, nil, 0644))

	_, err := NewGenerator(base).Generate()
	assert.Error(t, err)
}
