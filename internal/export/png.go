package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// WritePNG encodes img, enlarged by an integer factor with nearest-neighbor
// sampling so single pixels stay crisp.
func WritePNG(w io.Writer, img image.Image, scale int) error {
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}
	return png.Encode(w, img)
}

func SavePNG(path string, img image.Image, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := WritePNG(f, img, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
