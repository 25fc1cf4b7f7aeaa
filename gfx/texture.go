package gfx

import (
	"image"

	"github.com/go-gl/gl/v2.1/gl"
)

// TextureConfig is a configuration for creating a new TextureObject
type TextureConfig struct {
	Image       *image.RGBA
	UniformName string
}

// TextureObject represents a texture bound to a sampler uniform.
type TextureObject struct {
	texID uint32
	image *image.RGBA
}

// AddTextureObject uploads cfg.Image into a new texture on unit 0 and
// points the named sampler uniform at it. The texture can be refreshed by
// calling TextureObject.Update() after mutating cfg.Image.
func (s *Scene) AddTextureObject(cfg *TextureConfig) (*TextureObject, error) {

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(cfg.Image.Rect.Size().X), int32(cfg.Image.Rect.Size().Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(cfg.Image.Pix))

	if err := s.Program.SetUniform(cfg.UniformName, int32(0)); err != nil {
		return nil, err
	}

	tex := &TextureObject{
		texID: texID,
		image: cfg.Image,
	}
	s.textures = append(s.textures, tex)
	return tex, nil
}

// Update rewrites the texture from the current state of the backing image.
func (t *TextureObject) Update() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.texID)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
		int32(t.image.Rect.Size().X), int32(t.image.Rect.Size().Y),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(t.image.Pix))
}
