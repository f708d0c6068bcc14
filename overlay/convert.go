// This file is part of sdl12-compat.
//
// sdl12-compat is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdl12-compat is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdl12-compat.  If not, see <https://www.gnu.org/licenses/>.

package overlay

import (
	"image"

	"github.com/libsdl-org/sdl12-compat-sub000/backend"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"
)

// ToRGBA converts the overlay to an RGBA image of the requested size. The
// overlay is scaled if the size is different to the size of the overlay.
func (ov *Overlay) ToRGBA(w, h int) *image.RGBA {
	src := ov.YCbCr()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == int(ov.W) && h == int(ov.H) {
		draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	return dst
}

// TextureFormat chooses the texture format for uploading the overlay. The
// overlay's own format is used if the renderer supports it. Otherwise planar
// formats are swapped for each other if possible and everything else is
// converted to RGBA.
func (ov *Overlay) TextureFormat(supports func(uint32) bool) uint32 {
	f := ov.SDLFormat()
	if supports(f) {
		return f
	}
	if ov.Planar() {
		for _, alt := range []uint32{uint32(sdl.PIXELFORMAT_IYUV), uint32(sdl.PIXELFORMAT_YV12)} {
			if supports(alt) {
				return alt
			}
		}
	}
	return uint32(sdl.PIXELFORMAT_ABGR8888)
}

// copy rows of a plane to the destination, respecting both pitches
func copyPlane(dst []byte, dstPitch int, src []byte, srcPitch int, width int, rows int) int {
	for y := 0; y < rows; y++ {
		copy(dst[y*dstPitch:y*dstPitch+width], src[y*srcPitch:y*srcPitch+width])
	}
	return dstPitch * rows
}

// Upload copies the overlay to a texture created with the format returned by
// TextureFormat(). The texture must be the size of the overlay unless the
// texture format is ABGR8888, in which case the overlay is scaled to the
// texture size.
func (ov *Overlay) Upload(tex backend.Texture) error {
	pixels, pitch, err := tex.Lock(nil)
	if err != nil {
		return err
	}
	defer tex.Unlock()

	w := int(ov.W)
	h := int(ov.H)

	switch tex.Format() {
	case uint32(sdl.PIXELFORMAT_YV12), uint32(sdl.PIXELFORMAT_IYUV):
		u, v := ov.chroma()
		first, second := u, v
		if tex.Format() == uint32(sdl.PIXELFORMAT_YV12) {
			first, second = v, u
		}
		cw := (w + 1) / 2
		ch := (h + 1) / 2
		cp := (pitch + 1) / 2
		o := copyPlane(pixels, pitch, ov.Pixels[0], int(ov.Pitches[0]), w, h)
		o += copyPlane(pixels[o:], cp, first, int(ov.Pitches[1]), cw, ch)
		copyPlane(pixels[o:], cp, second, int(ov.Pitches[2]), cw, ch)

	case ov.SDLFormat():
		copyPlane(pixels, pitch, ov.Pixels[0], int(ov.Pitches[0]), ((w+1)&^1)*2, h)

	default:
		tw, th := tex.Size()
		img := ov.ToRGBA(int(tw), int(th))
		copyPlane(pixels, pitch, img.Pix, img.Stride, int(tw)*4, int(th))
	}

	return nil
}

// Item is a request to display an overlay.
type Item struct {
	Overlay *Overlay
	Dst     legacy.Rect
}

// Queue is the list of overlays to be composited at the next present.
type Queue struct {
	items []Item
}

// Enqueue adds a display request to the end of the queue.
func (q *Queue) Enqueue(ov *Overlay, dst legacy.Rect) {
	q.items = append(q.items, Item{Overlay: ov, Dst: dst})
}

// Len returns the number of queued requests.
func (q *Queue) Len() int {
	return len(q.items)
}

// Drain calls f for every queued request in the order they were added and
// empties the queue. The queue is emptied even if f returns an error, in
// which case the first error is returned.
func (q *Queue) Drain(f func(Item) error) error {
	var first error
	for _, it := range q.items {
		if err := f(it); err != nil && first == nil {
			first = err
		}
	}
	clear(q.items)
	q.items = q.items[:0]
	return first
}

// Remove drops any queued requests for the overlay. Called when an overlay
// is freed.
func (q *Queue) Remove(ov *Overlay) {
	n := 0
	for _, it := range q.items {
		if it.Overlay != ov {
			q.items[n] = it
			n++
		}
	}
	clear(q.items[n:])
	q.items = q.items[:n]
}
