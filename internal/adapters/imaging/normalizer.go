package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pet-grooming-intake/internal/domain/intake"

	"github.com/nfnt/resize"
)

const (
	DefaultJPEGQuality = 95

	ThumbWidth  = 320
	ThumbHeight = 220
)

// Normalizer re-codifica fotos a JPEG/PNG opaco sobre fondo blanco.
type Normalizer struct {
	JPEGQuality int
}

func New() *Normalizer {
	return &Normalizer{JPEGQuality: DefaultJPEGQuality}
}

// Supported indica si la extensión es de las aceptadas por el formulario.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png":
		return true
	default:
		return false
	}
}

func (n *Normalizer) Check(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", intake.ErrPhotoNotFound, path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", intake.ErrPhotoNotFound, path)
	}
	if !Supported(path) {
		return fmt.Errorf("%w: %s", intake.ErrUnsupportedPhoto, filepath.Ext(path))
	}
	if _, err := decodeFile(path); err != nil {
		return err
	}
	return nil
}

// Encode escribe en w la versión normalizada de src. ext decide el formato:
// .jpg/.jpeg => JPEG, cualquier otra => PNG.
func (n *Normalizer) Encode(src string, w io.Writer, ext string) error {
	img, err := decodeFile(src)
	if err != nil {
		return err
	}
	flat := Flatten(img)

	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		q := n.JPEGQuality
		if q <= 0 || q > 100 {
			q = DefaultJPEGQuality
		}
		return jpeg.Encode(w, flat, &jpeg.Options{Quality: q})
	default:
		return png.Encode(w, flat)
	}
}

// Normalize escribe dest a partir de src. No modifica src.
func (n *Normalizer) Normalize(src, dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if err := n.Encode(src, out, filepath.Ext(dest)); err != nil {
		_ = out.Close()
		_ = os.Remove(dest)
		return err
	}
	return out.Close()
}

// Thumbnail devuelve una vista previa aplanada que cabe en maxW x maxH.
func (n *Normalizer) Thumbnail(path string, maxW, maxH uint) (image.Image, error) {
	if maxW == 0 {
		maxW = ThumbWidth
	}
	if maxH == 0 {
		maxH = ThumbHeight
	}
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return resize.Thumbnail(maxW, maxH, Flatten(img), resize.Lanczos3), nil
}

// Flatten compone img sobre blanco. El resultado es totalmente opaco,
// así el PNG sale sin canal alfa y el JPEG no pierde la transparencia en negro.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", intake.ErrPhotoNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", intake.ErrUnreadablePhoto, path, err)
	}
	return img, nil
}
