// internals/helpers/image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

const maxUploadSize = int64(5 * 1024 * 1024)

type WebPOptions struct {
	MaxW    int     // genişlik sınırı (oran korunur)
	MaxH    int     // yükseklik sınırı
	Quality float32
}

func DefaultWebPOptions() WebPOptions {
	return WebPOptions{MaxW: 1600, MaxH: 1600, Quality: 80}
}

// ConvertToWebP: multipart görseli decode eder, gerekirse küçültür,
// webp olarak encode edip byte dizisi döner.
func ConvertToWebP(fh *multipart.FileHeader, opts WebPOptions) ([]byte, error) {
	if fh.Size > maxUploadSize {
		return nil, ErrValidation(fmt.Sprintf("Görsel 5MB sınırını aşıyor (%dKB)", fh.Size/1024))
	}
	src, err := fh.Open()
	if err != nil {
		return nil, ErrValidation("Görsel dosyası açılamadı")
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, ErrValidation("Görsel formatı desteklenmiyor (jpeg/png)")
	}

	img = downscale(img, opts.MaxW, opts.MaxH)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: opts.Quality}); err != nil {
		return nil, ErrInternal("Görsel dönüştürülemedi", err)
	}
	return buf.Bytes(), nil
}

// MakeThumbnailWebP: kare thumbnail (liste görünümleri için).
func MakeThumbnailWebP(fh *multipart.FileHeader, side int, quality float32) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, ErrValidation("Görsel dosyası açılamadı")
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, ErrValidation("Görsel formatı desteklenmiyor (jpeg/png)")
	}

	thumb := imaging.Fill(img, side, side, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, thumb, &webp.Options{Quality: quality}); err != nil {
		return nil, ErrInternal("Thumbnail oluşturulamadı", err)
	}
	return buf.Bytes(), nil
}

func downscale(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return img
	}
	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
