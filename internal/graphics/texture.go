package graphics

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"
)

// maxTextureDim caps uploaded texture size; larger images are downscaled.
const maxTextureDim = 4096

// Texture is a GPU texture plus the unit slot its material assigned to it.
type Texture struct {
	id     uint32
	target uint32
	slot   int32
	width  int
	height int
	path   string
}

// LoadTexture loads a 2D texture from a PNG or JPEG file.
func LoadTexture(path string) (*Texture, error) {
	rgba, err := decodeRGBA(path)
	if err != nil {
		return nil, err
	}

	t := &Texture{target: gl.TEXTURE_2D, path: path}
	t.width = rgba.Rect.Size().X
	t.height = rgba.Rect.Size().Y

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(t.width),
		int32(t.height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// LoadCubeMap loads the six faces of a cube map in the GL face order:
// +X, -X, +Y, -Y, +Z, -Z.
func LoadCubeMap(facePaths [6]string) (*Texture, error) {
	t := &Texture{target: gl.TEXTURE_CUBE_MAP}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, t.id)

	for i, path := range facePaths {
		rgba, err := decodeRGBA(path)
		if err != nil {
			gl.DeleteTextures(1, &t.id)
			return nil, fmt.Errorf("cube map face %d: %v", i, err)
		}
		size := rgba.Rect.Size()
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0,
			gl.RGBA,
			int32(size.X),
			int32(size.Y),
			0,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(rgba.Pix),
		)
		t.width, t.height = size.X, size.Y
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return t, nil
}

// SetSlot assigns the texture unit this texture binds to. Materials assign
// slots in insertion order.
func (t *Texture) SetSlot(slot int32) {
	t.slot = slot
}

func (t *Texture) Slot() int32 {
	return t.slot
}

func (t *Texture) Path() string {
	return t.path
}

// Activate binds the texture on its assigned unit.
func (t *Texture) Activate() {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(t.slot))
	gl.BindTexture(t.target, t.id)
}

// Dispose releases the GL texture.
func (t *Texture) Dispose() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

func decodeRGBA(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %v", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxTextureDim || bounds.Dy() > maxTextureDim {
		img = downscale(img, maxTextureDim)
		bounds = img.Bounds()
	}

	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba, nil
}

// downscale shrinks an image so its longer edge equals maxDim, preserving
// aspect ratio.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Src, nil)
	return dst
}
