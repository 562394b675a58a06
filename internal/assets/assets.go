// Package assets resolves the shader sources and textures the renderer reads
// at startup, either from a directory on disk or from the copies embedded in
// the binary.
package assets

import (
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"

	"golang.org/x/image/draw"
)

//go:embed shaders/*.glsl textures/*.png
var embedded embed.FS

// FS returns os.DirFS(dir) when dir is set and the embedded assets otherwise.
// Both use the same layout: shaders/<name>.glsl and textures/<name>.png.
func FS(dir string) fs.FS {
	if dir == "" {
		return embedded
	}
	return os.DirFS(dir)
}

// ReadFile returns the whole content of name.
func ReadFile(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", name, err)
	}
	return data, nil
}

// Image is tightly packed 8-bit pixel data, RGBA when Alpha is set and RGB
// otherwise, rows top to bottom.
type Image struct {
	Width  int
	Height int
	Alpha  bool
	Pix    []byte
}

func (img *Image) Channels() int {
	if img.Alpha {
		return 4
	}
	return 3
}

// LoadImage decodes name and returns it as a size x size image, rescaling
// when the source has other dimensions. A non-positive size keeps the
// source dimensions.
func LoadImage(fsys fs.FS, name string, size int, alpha bool) (*Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", name, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return convert(src, size, alpha), nil
}

func convert(src image.Image, size int, alpha bool) *Image {
	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	if size > 0 {
		w, h = size, size
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == sb.Dx() && h == sb.Dy() {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	}

	img := &Image{Width: w, Height: h, Alpha: alpha}
	if alpha {
		img.Pix = dst.Pix
		return img
	}
	img.Pix = make([]byte, 0, w*h*3)
	for i := 0; i < len(dst.Pix); i += 4 {
		img.Pix = append(img.Pix, dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2])
	}
	return img
}
