package texture

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/seaworld/internal/logger"
)

// CubeFaces is the number of faces in a cubemap.
const CubeFaces = 6

// Options controls 2D texture upload.
type Options struct {
	Clamp bool // Clamp to edge instead of repeating
}

// Load2D decodes path and uploads it as a mipmapped 2D texture.
// On failure it logs a warning and returns handle 0 with the error, so
// callers can keep rendering with an unbound sampler.
func Load2D(path string, opts Options) (uint32, error) {
	img, err := DecodeFile(path)
	if err != nil {
		logger.Warn("texture failed to load", zap.String("path", path), zap.Error(err))
		return 0, err
	}
	return Upload2D(img, opts), nil
}

// Upload2D uploads an RGBA image and builds its mipmap chain.
func Upload2D(img *image.RGBA, opts Options) uint32 {
	if len(img.Pix) == 0 {
		return 0
	}

	wrap := int32(gl.REPEAT)
	if opts.Clamp {
		wrap = gl.CLAMP_TO_EDGE
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texID
}

// LoadCubemap uploads six face images in +X, -X, +Y, -Y, +Z, -Z order.
// A face that fails to decode is logged and left empty; the returned
// texture is still usable and the error joins every face failure.
func LoadCubemap(faces [CubeFaces]string) (uint32, error) {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, texID)

	var errs []error
	for i, path := range faces {
		img, err := DecodeFile(path)
		if err != nil {
			logger.Warn("cubemap face failed to load", zap.Int("face", i), zap.String("path", path), zap.Error(err))
			errs = append(errs, fmt.Errorf("face %d: %w", i, err))
			continue
		}
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA,
			int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	return texID, errors.Join(errs...)
}

// Delete releases texture handles, skipping zero.
func Delete(ids ...uint32) {
	for _, id := range ids {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}
