package imgio

// File decode/encode for the CLI front end. The core only ever sees
// in-memory image.Image values.

import(
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/tiff"
)

// LoadImage decodes a PNG, JPEG, TIFF or Radiance HDR file by
// extension. JPEGs get their EXIF orientation normalized, so a photo
// shot sideways is filtered the way it's actually viewed.
func LoadImage(filename string) (image.Image, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r '%s': %v", filename, err)
	}
	defer reader.Close()

	switch strings.ToLower(filepath.Ext(filename)) {

	case ".png":
		img, err := png.Decode(reader)
		if err != nil {
			return nil, fmt.Errorf("png loading '%s': %v", filename, err)
		}
		return img, nil

	case ".jpg", ".jpeg":
		img, err := jpeg.Decode(reader)
		if err != nil {
			return nil, fmt.Errorf("jpeg loading '%s': %v", filename, err)
		}
		return normalizeOrientation(img, filename), nil

	case ".tif", ".tiff":
		img, err := tiff.Decode(reader)
		if err != nil {
			return nil, fmt.Errorf("tiff loading '%s': %v", filename, err)
		}
		return img, nil

	case ".hdr":
		img, err := rgbe.Decode(reader)
		if err != nil {
			return nil, fmt.Errorf("hdr loading '%s': %v", filename, err)
		}
		return img, nil
	}

	return nil, fmt.Errorf("'%s': unhandled image extension", filename)
}

// normalizeOrientation re-reads the file for EXIF and undoes the
// camera's stored rotation. Files without EXIF (or without the tag)
// pass through untouched.
func normalizeOrientation(img image.Image, filename string) image.Image {
	reader, err := os.Open(filename)
	if err != nil {
		return img
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return img
	}
	tag, err := ex.Get(exif.Orientation)
	if err != nil {
		return img
	}
	orient, err := tag.Int(0)
	if err != nil {
		return img
	}

	switch orient {
	case 3:
		return rotate180(img)
	case 6:
		return rotate90CW(img)
	case 8:
		return rotate90CCW(img)
	}
	return img
}

func rotate180(src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rectangle{Max: image.Point{b.Dx(), b.Dy()}})
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(b.Dx()-1-x, b.Dy()-1-y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

func rotate90CW(src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rectangle{Max: image.Point{b.Dy(), b.Dx()}})
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(b.Dy()-1-y, x, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

func rotate90CCW(src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rectangle{Max: image.Point{b.Dy(), b.Dx()}})
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(y, b.Dx()-1-x, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

func WritePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}
