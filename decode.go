package favicongen

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
)

// loadSource decodes the source file into a 4-channel RGBA image. Any format
// registered above (png, jpeg, gif, bmp) is accepted. The returned image is
// never mutated; every resize reads from it.
func (gen *Generator) loadSource() (*image.NRGBA, error) {
	f, err := os.Open(gen.source)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", gen.source)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", gen.source)
	}
	return imaging.Clone(img), nil
}
