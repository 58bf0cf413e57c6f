package menu

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrPriceRequired    = errors.New("price is required")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrInvalidCategory  = errors.New("unknown category")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrImageExtension   = errors.New("image type not allowed")
)

const (
	DefaultRating = 4.0
	DefaultImage  = "/placeholder.svg"
)

var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".svg":  true,
}

func ValidateImageExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return fmt.Errorf("%w: file extension missing", ErrImageExtension)
	}

	if !allowedImageExt[ext] {
		return ErrImageExtension
	}

	return nil
}

// ToProduct validates the editor form and fills in defaults.
// The returned product has no id.
func (in ProductInput) ToProduct() (*Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if !in.Price.Valid {
		return nil, ErrPriceRequired
	}
	if in.Price.Decimal.IsNegative() {
		return nil, ErrNegativePrice
	}

	category := Category(in.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	rating := DefaultRating
	if in.Rating != nil && *in.Rating != 0 {
		rating = *in.Rating
	}
	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}

	image := strings.TrimSpace(in.Image)
	if image == "" {
		image = DefaultImage
	}

	return &Product{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price.Decimal,
		Image:       image,
		Category:    category,
		Rating:      rating,
		Ingredients: in.Ingredients,
		Allergens:   in.Allergens,
		Spicy:       in.Spicy,
		Vegetarian:  in.Vegetarian,
	}, nil
}
