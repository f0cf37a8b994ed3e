package renderers

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/planar"
	"github.com/tdewolff/planar/renderers/eps"
	"github.com/tdewolff/planar/renderers/rasterizer"
	"github.com/tdewolff/planar/renderers/svg"
	"golang.org/x/image/tiff"
)

type Options struct {
	Raster *rasterizer.Options
	JPG    *jpeg.Options
	GIF    *gif.Options
	TIFF   *tiff.Options
	SVG    *svg.Options
	EPS    *eps.Options
}

// Write writes a preview of the network to a file, the format is chosen by the file extension.
func Write(filename string, net *planar.Network, opts ...interface{}) error {
	options := Options{}
	for _, opt := range opts {
		switch o := opt.(type) {
		case *rasterizer.Options:
			options.Raster = o
		case *jpeg.Options:
			options.JPG = o
		case *gif.Options:
			options.GIF = o
		case *tiff.Options:
			options.TIFF = o
		case *svg.Options:
			options.SVG = o
		case *eps.Options:
			options.EPS = o
		default:
			return fmt.Errorf("unknown option: %v", opt)
		}
	}

	var writer func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		writer = func(w io.Writer) error { return rasterizer.PNGWriter(w, net, options.Raster) }
	case ".jpg", ".jpeg":
		writer = func(w io.Writer) error { return rasterizer.JPGWriter(w, net, options.Raster, options.JPG) }
	case ".gif":
		writer = func(w io.Writer) error { return rasterizer.GIFWriter(w, net, options.Raster, options.GIF) }
	case ".tif", ".tiff":
		writer = func(w io.Writer) error { return rasterizer.TIFFWriter(w, net, options.Raster, options.TIFF) }
	case ".svg", ".svgz":
		if options.SVG == nil {
			defaultOptions := svg.DefaultOptions
			options.SVG = &defaultOptions
		}
		if ext == ".svgz" && options.SVG.Compression == 0 {
			options.SVG.Compression = -1
		}
		writer = func(w io.Writer) error { return svg.Write(w, net, options.SVG) }
	case ".eps":
		writer = func(w io.Writer) error { return eps.Writer(w, net, options.EPS) }
	default:
		return fmt.Errorf("unknown file extension: %v", ext)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := writer(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
