package favicongen

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// PNGSizes are the square favicon sizes produced on every run, in output order.
var PNGSizes = []int{16, 32, 48, 64, 128, 180, 192, 512}

// ICOSizes are the resolutions embedded in favicon.ico. The first entry is
// the primary image; the rest are alternates selected by the consumer.
var ICOSizes = []image.Point{{X: 16, Y: 16}, {X: 32, Y: 32}, {X: 48, Y: 48}, {X: 64, Y: 64}}

const (
	// DefaultSource is the image read when no source is configured.
	DefaultSource = "icon.png"
	// DefaultOutputDir is where generated favicons land when no directory is configured.
	DefaultOutputDir = "favicons"

	containerName = "favicon.ico"
	touchIconName = "apple-touch-icon.png"
	touchIconSize = 180 // the size Apple platforms expect
)

type Opt func(gen *Generator)

// WithSource sets the path of the image favicons are generated from.
func WithSource(path string) Opt {
	return func(gen *Generator) {
		gen.source = path
	}
}

// WithOutputDir sets the directory generated files are written into.
func WithOutputDir(dir string) Opt {
	return func(gen *Generator) {
		gen.out = dir
	}
}

// WithProgress directs per-file progress lines to w instead of stdout.
func WithProgress(w io.Writer) Opt {
	return func(gen *Generator) {
		gen.progress = w
	}
}

// Generator turns one source image into a fixed set of favicon assets.
type Generator struct {
	source   string    // Path of the image to convert
	out      string    // Output directory, created if absent
	progress io.Writer // One line per generated file
}

func NewGenerator(opts ...Opt) *Generator {
	gen := Generator{
		source:   DefaultSource,
		out:      DefaultOutputDir,
		progress: os.Stdout,
	}
	for _, opt := range opts {
		opt(&gen)
	}
	return &gen
}

/*
Run generates every favicon asset in a fixed order: the output directory is
created if absent, the source image is decoded and normalized to RGBA, then
one square PNG is written per size in PNGSizes, followed by a combined
favicon.ico embedding each of ICOSizes, and finally a 180x180
apple-touch-icon.png. File names depend only on the target size, so re-runs
overwrite the previous outputs in place.

Run stops at the first error. Files written before the failure are left on
disk.
*/
func (gen *Generator) Run() error {
	if err := os.MkdirAll(gen.out, 0755); err != nil {
		return errors.Wrapf(err, "create output dir %s", gen.out)
	}

	src, err := gen.loadSource()
	if err != nil {
		return err
	}

	for _, size := range PNGSizes {
		name := fmt.Sprintf("favicon-%dx%d.png", size, size)
		if err := gen.savePNG(squared(src, size), name); err != nil {
			return err
		}
	}

	if err := gen.writeContainer(src); err != nil {
		return err
	}

	if err := gen.savePNG(squared(src, touchIconSize), touchIconName); err != nil {
		return err
	}

	fmt.Fprintf(gen.progress, "\nAll favicons saved to '%s/'\n", gen.out)
	return nil
}

// squared scales img to size x size. Both dimensions are forced, so a
// non-square source comes out stretched rather than cropped or padded.
func squared(img image.Image, size int) image.Image {
	return resize.Resize(uint(size), uint(size), img, resize.Lanczos3)
}

func (gen *Generator) savePNG(img image.Image, name string) error {
	if err := imaging.Save(img, filepath.Join(gen.out, name)); err != nil {
		return errors.Wrapf(err, "save %s", name)
	}
	fmt.Fprintf(gen.progress, "Created %s\n", name)
	return nil
}
