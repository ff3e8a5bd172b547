package mipmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func TestProvision_CreatesDensityDir(t *testing.T) {
	assert := assert.New(t)
	base := t.TempDir()
	d, _ := Lookup("hdpi")

	targets, err := Provision(base, d, imaging.PNG)
	assert.NoError(err)
	assert.Equal(filepath.Join(base, "mipmap-hdpi", "ic_launcher.png"), targets.Plain)
	assert.Equal(filepath.Join(base, "mipmap-hdpi", "ic_launcher_round.png"), targets.Round)
	assert.Equal(targets.Plain, targets.Path(Plain))
	assert.Equal(targets.Round, targets.Path(Round))

	fi, err := os.Stat(filepath.Join(base, "mipmap-hdpi"))
	assert.NoError(err)
	assert.True(fi.IsDir())

	// An existing directory is reused.
	again, err := Provision(base, d, imaging.PNG)
	assert.NoError(err)
	assert.Equal(targets, again)
}

func TestProvision_BaseIsFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "res")
	assert.NoError(t, os.WriteFile(base, nil, 0644))

	_, err := Provision(base, Densities[0], imaging.PNG)
	assert.Error(t, err)
}
