// internal/generator/assets.go
package generator

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

const (
	imagesPerProduct = 3
	imageSize        = 200
)

// GenerateImages writes the placeholder JPEGs for one product into dir,
// creating the directory if needed, and returns the generated filenames.
// Content is random pixel noise; the only contract is that a decodable
// image exists at each path and names are unique per product.
func GenerateImages(dir, category string, index int) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}

	slug := strings.ReplaceAll(strings.ToLower(category), " ", "_")
	filenames := make([]string, 0, imagesPerProduct)

	for i := 1; i <= imagesPerProduct; i++ {
		name := fmt.Sprintf("%s_%d_%d.jpg", slug, index, i)
		if err := writeNoiseImage(filepath.Join(dir, name)); err != nil {
			return nil, fmt.Errorf("failed to write placeholder image %s: %w", name, err)
		}
		filenames = append(filenames, name)
	}

	return filenames, nil
}

func writeNoiseImage(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	for y := 0; y < imageSize; y++ {
		for x := 0; x < imageSize; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rand.IntN(256)),
				G: uint8(rand.IntN(256)),
				B: uint8(rand.IntN(256)),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 80}); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
