package codernote

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"golang.org/x/image/draw"
)

const (
	maxThumbnailWidth = 800
	jpegQuality       = 80
	maxUploadSize     = 10 << 20 // 10MB
	uploadsSubdir     = "uploads"
)

// makeThumbnail decodes an image from src, scales it down to
// maxThumbnailWidth if it is wider, and encodes it as JPEG.
func makeThumbnail(src io.Reader) ([]byte, image.Point, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, image.Point{}, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxThumbnailWidth {
		newH := max(1, h*maxThumbnailWidth/w)
		dst := image.NewRGBA(image.Rect(0, 0, maxThumbnailWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w, h = maxThumbnailWidth, newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, image.Point{}, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), image.Pt(w, h), nil
}

// saveThumbnail stores the thumbnail for slug under the static uploads
// directory, replacing any previous one atomically, and returns its public URL.
func (a *App) saveThumbnail(slug string, src io.Reader) (string, error) {
	data, size, err := makeThumbnail(src)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(a.staticDir, uploadsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}
	name := thumbnailName(slug)
	if err := renameio.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write thumbnail: %w", err)
	}
	a.Logger.Info().
		Str("slug", slug).
		Str("file", name).
		Int("width", size.X).
		Int("height", size.Y).
		Msg("thumbnail saved")
	return "/public/" + uploadsSubdir + "/" + name, nil
}

// thumbnailName derives the upload file name for slug. The hash suffix
// keeps slugs that slugify alike ("a_b", "a-b") apart.
func thumbnailName(slug string) string {
	base := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			return r
		}
		return -1
	}, Slugify(slug))
	if base == "" {
		base = "thumbnail"
	}
	sum := sha256.Sum256([]byte(slug))
	return base + "-" + hex.EncodeToString(sum[:4]) + ".jpg"
}

// removeThumbnail deletes an uploaded thumbnail. URLs outside the uploads
// directory are left alone.
func (a *App) removeThumbnail(url string) {
	prefix := "/public/" + uploadsSubdir + "/"
	if !strings.HasPrefix(url, prefix) {
		return
	}
	name := filepath.Base(url)
	_ = os.Remove(filepath.Join(a.staticDir, uploadsSubdir, name)) // already gone is fine
}
