//go:build !ebiten

package app

const (
	pixelBackend = "pixel"
	pixelHint    = "the pixel backend requires building with the 'ebiten' tag"
)
