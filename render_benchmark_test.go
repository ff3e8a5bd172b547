package mipmap

import (
	"io"
	"testing"

	"github.com/disintegration/imaging"
)

func Benchmark_Render(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Render(192)
	}
}

func Benchmark_RenderEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if err := Encode(io.Discard, Render(192), imaging.PNG); err != nil {
			b.Fatalf("could not encode icon: %v", err)
		}
	}
}
