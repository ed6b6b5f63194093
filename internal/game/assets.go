package game

import (
	"image"
	"image/color"
	"path/filepath"

	"github.com/Faultbox/seaworld/internal/engine/texture"
)

// Texture files under the resource directory.
const (
	boxDiffuse    = "textures/metal/metal_plate_diff_4k.jpg"
	boxSpecular   = "textures/metal/metal_plate_spec_4k.jpg"
	sandDiffuse   = "textures/sand/sand_diff.jpg"
	sandNormal    = "textures/sand/sand_normal.jpg"
	sandDepth     = "textures/sand/sand_disp.jpg"
	seaweedSprite = "textures/seaweed/seaweed.png"
)

// skyboxFaces are listed in +X, -X, +Y, -Y, +Z, -Z order.
var skyboxFaces = [texture.CubeFaces]string{
	"textures/skybox2/aqua4_ft.jpg",
	"textures/skybox2/aqua4_bk.jpg",
	"textures/skybox2/aqua4_up.jpg",
	"textures/skybox2/aqua4_dn.jpg",
	"textures/skybox2/aqua4_rt.jpg",
	"textures/skybox2/aqua4_lf.jpg",
}

// resources resolves asset paths against the resource directory.
type resources string

func (r resources) path(rel string) string {
	return filepath.Join(string(r), filepath.FromSlash(rel))
}

func (r resources) skybox() [texture.CubeFaces]string {
	var faces [texture.CubeFaces]string
	for i, f := range skyboxFaces {
		faces[i] = r.path(f)
	}
	return faces
}

// solid returns a 1x1 image of c, used in place of missing textures.
func solid(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return img
}

// Placeholder colors: white albedo, no specular, an undisturbed normal and
// a flat height map.
var (
	placeholderDiffuse  = color.RGBA{255, 255, 255, 255}
	placeholderSpecular = color.RGBA{0, 0, 0, 255}
	placeholderNormal   = color.RGBA{128, 128, 255, 255}
	placeholderDepth    = color.RGBA{0, 0, 0, 255}
)
