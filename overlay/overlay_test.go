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

package overlay_test

import (
	"fmt"
	"testing"

	"github.com/libsdl-org/sdl12-compat-sub000/backend/headless"
	"github.com/libsdl-org/sdl12-compat-sub000/legacy"
	"github.com/libsdl-org/sdl12-compat-sub000/overlay"
	"github.com/libsdl-org/sdl12-compat-sub000/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestNew(t *testing.T) {
	ov, err := overlay.New(5, 3, legacy.YV12_OVERLAY)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ov.Planes, 3)
	test.ExpectEquality(t, ov.Pitches[0], uint16(5))
	test.ExpectEquality(t, ov.Pitches[1], uint16(3))
	test.ExpectEquality(t, len(ov.Pixels[2]), 6)
	test.ExpectEquality(t, ov.SDLFormat(), uint32(sdl.PIXELFORMAT_YV12))

	ov, err = overlay.New(5, 3, legacy.UYVY_OVERLAY)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ov.Planes, 1)
	test.ExpectEquality(t, ov.Pitches[0], uint16(12))

	_, err = overlay.New(5, 3, 0x12345678)
	test.ExpectFailure(t, err)
	_, err = overlay.New(0, 3, legacy.YV12_OVERLAY)
	test.ExpectFailure(t, err)

	ov.Lock()
	test.ExpectSuccess(t, ov.Locked())
	ov.Unlock()
	test.ExpectFailure(t, ov.Locked())
}

func TestYCbCr(t *testing.T) {
	ov, _ := overlay.New(2, 2, legacy.YV12_OVERLAY)
	ov.Pixels[1][0] = 1 // v
	ov.Pixels[2][0] = 2 // u
	img := ov.YCbCr()
	test.ExpectEquality(t, img.Cb[0], uint8(2))
	test.ExpectEquality(t, img.Cr[0], uint8(1))

	ov, _ = overlay.New(2, 1, legacy.YUY2_OVERLAY)
	copy(ov.Pixels[0], []byte{10, 20, 30, 40})
	img = ov.YCbCr()
	test.ExpectEquality(t, img.Y[0], uint8(10))
	test.ExpectEquality(t, img.Y[1], uint8(30))
	test.ExpectEquality(t, img.Cb[0], uint8(20))
	test.ExpectEquality(t, img.Cr[0], uint8(40))

	ov, _ = overlay.New(2, 1, legacy.UYVY_OVERLAY)
	copy(ov.Pixels[0], []byte{10, 20, 30, 40})
	img = ov.YCbCr()
	test.ExpectEquality(t, img.Y[0], uint8(20))
	test.ExpectEquality(t, img.Y[1], uint8(40))
	test.ExpectEquality(t, img.Cb[0], uint8(10))
	test.ExpectEquality(t, img.Cr[0], uint8(30))
}

func TestToRGBA(t *testing.T) {
	ov, _ := overlay.New(4, 4, legacy.IYUV_OVERLAY)
	for _, p := range ov.Pixels {
		for i := range p {
			p[i] = 128
		}
	}

	img := ov.ToRGBA(4, 4)
	test.ExpectEquality(t, img.Pix[0], uint8(128))
	test.ExpectEquality(t, img.Pix[3], uint8(255))

	// scaled
	img = ov.ToRGBA(8, 2)
	test.ExpectEquality(t, img.Bounds().Dx(), 8)
	test.ExpectApproximate(t, int(img.Pix[4*5+1]), 128, 0.02)
}

func TestUpload(t *testing.T) {
	b := headless.NewBackend()
	test.DemandSuccess(t, b.Init())
	w, err := b.CreateWindow("test", 320, 200, 0)
	test.DemandSuccess(t, err)
	r, err := w.CreateRenderer(false)
	test.DemandSuccess(t, err)

	ov, _ := overlay.New(2, 2, legacy.YV12_OVERLAY)
	copy(ov.Pixels[0], []byte{1, 2, 3, 4})
	ov.Pixels[1][0] = 5 // v
	ov.Pixels[2][0] = 6 // u

	format := ov.TextureFormat(r.SupportsFormat)
	test.DemandEquality(t, format, uint32(sdl.PIXELFORMAT_YV12))

	tex, err := r.CreateTexture(format, 2, 2)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ov.Upload(tex))
	pix := tex.(*headless.Texture).Pixels
	test.ExpectEquality(t, fmt.Sprint(pix), fmt.Sprint([]byte{1, 2, 3, 4, 5, 6}))

	// chroma planes are swapped for IYUV
	iyuv, _ := r.CreateTexture(uint32(sdl.PIXELFORMAT_IYUV), 2, 2)
	test.ExpectSuccess(t, ov.Upload(iyuv))
	pix = iyuv.(*headless.Texture).Pixels
	test.ExpectEquality(t, fmt.Sprint(pix), fmt.Sprint([]byte{1, 2, 3, 4, 6, 5}))

	// packed formats are converted
	ov, _ = overlay.New(2, 2, legacy.YVYU_OVERLAY)
	format = ov.TextureFormat(r.SupportsFormat)
	test.ExpectEquality(t, format, uint32(sdl.PIXELFORMAT_ABGR8888))
	rgba, _ := r.CreateTexture(format, 4, 4)
	test.ExpectSuccess(t, ov.Upload(rgba))
	test.ExpectEquality(t, rgba.(*headless.Texture).Pixels[3], uint8(255))
}

func TestQueue(t *testing.T) {
	a, _ := overlay.New(2, 2, legacy.YV12_OVERLAY)
	b, _ := overlay.New(2, 2, legacy.YV12_OVERLAY)

	var q overlay.Queue
	q.Enqueue(a, legacy.Rect{W: 1})
	q.Enqueue(b, legacy.Rect{W: 2})
	q.Enqueue(a, legacy.Rect{W: 3})
	test.ExpectEquality(t, q.Len(), 3)

	var order []uint16
	err := q.Drain(func(it overlay.Item) error {
		order = append(order, it.Dst.W)
		return fmt.Errorf("test")
	})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, fmt.Sprint(order), "[1 2 3]")
	test.ExpectEquality(t, q.Len(), 0)

	q.Enqueue(a, legacy.Rect{})
	q.Enqueue(b, legacy.Rect{})
	q.Remove(a)
	test.ExpectEquality(t, q.Len(), 1)
}
