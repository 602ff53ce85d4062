// Copyright 2024 The Hyperline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image"
	"io"

	"golang.org/x/image/bmp"
)

// LoadBMP decodes a BMP image for use with Image, the way shape_texture.rs's
// bitmap-driven mode authored textures as image files rather than code.
func LoadBMP(r io.Reader) (image.Image, error) {
	return bmp.Decode(r)
}
