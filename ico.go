package favicongen

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	ico "github.com/sergeymakinen/go-ico"
)

// writeContainer resizes the source to each resolution in ICOSizes and
// combines them into a single favicon.ico. The 16x16 entry comes first so
// consumers that take the leading image get the classic tab-sized icon.
func (gen *Generator) writeContainer(src image.Image) error {
	imgs := make([]image.Image, 0, len(ICOSizes))
	for _, p := range ICOSizes {
		imgs = append(imgs, resize.Resize(uint(p.X), uint(p.Y), src, resize.Lanczos3))
	}

	f, err := os.Create(filepath.Join(gen.out, containerName))
	if err != nil {
		return errors.Wrapf(err, "create %s", containerName)
	}
	defer f.Close()

	if err := ico.EncodeAll(f, imgs); err != nil {
		return errors.Wrapf(err, "encode %s", containerName)
	}
	fmt.Fprintf(gen.progress, "Created %s\n", containerName)
	return nil
}
