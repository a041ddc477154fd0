package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// cover scales src to fill a w x h box, cropping the overflow evenly around
// the center.
func cover(src image.Image, w, h int) image.Image {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	if sw == 0 || sh == 0 {
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}

	crop := sb
	if sw*h > sh*w {
		cw := sh * w / h
		x0 := sb.Min.X + (sw-cw)/2
		crop = image.Rect(x0, sb.Min.Y, x0+cw, sb.Max.Y)
	} else if sw*h < sh*w {
		ch := sw * h / w
		y0 := sb.Min.Y + (sh-ch)/2
		crop = image.Rect(sb.Min.X, y0, sb.Max.X, y0+ch)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, crop, xdraw.Over, nil)
	return dst
}

// fade multiplies the image alpha by opacity in [0,1].
func fade(src image.Image, opacity float64) image.Image {
	if opacity >= 1 {
		return src
	}
	if opacity < 0 {
		opacity = 0
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			c.A = uint8(float64(c.A) * opacity)
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}
