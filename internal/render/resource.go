//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// imageResource wraps a GPU texture so release is guarded: a nil image is
// skipped and releasing twice changes nothing.
type imageResource struct {
	img      *ebiten.Image
	released bool
}

// Release frees the underlying texture.
func (r *imageResource) Release() {
	if r == nil || r.released || r.img == nil {
		return
	}
	r.released = true
	r.img.Dispose()
}
