package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrImageStoreDisabled = errors.New("image storage not configured")

// ImageStore persists uploaded product images and returns their public URL.
type ImageStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

type Service struct {
	repo   Repository
	images ImageStore
	log    logrus.FieldLogger
}

// NewService builds the catalog service. images may be nil, in which case
// image uploads fail with ErrImageStoreDisabled.
func NewService(repo Repository, images ImageStore, log logrus.FieldLogger) *Service {
	return &Service{
		repo:   repo,
		images: images,
		log:    log.WithField("component", "menu"),
	}
}

// --------------------------------------------------
// Storefront (read only)
// --------------------------------------------------

func (s *Service) List(ctx context.Context, f Filter) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(products), nil
}

func (s *Service) Get(ctx context.Context, id int) (*Product, error) {
	return s.repo.Get(ctx, id)
}

// --------------------------------------------------
// Admin editor
// --------------------------------------------------

func (s *Service) Create(ctx context.Context, in ProductInput) (*Product, error) {
	p, err := in.ToProduct()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"product_id": p.ID, "name": p.Name}).Info("product created")
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int, in ProductInput) (*Product, error) {
	p, err := in.ToProduct()
	if err != nil {
		return nil, err
	}
	p.ID = id

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.log.WithField("product_id", id).Info("product updated")
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.WithField("product_id", id).Info("product deleted")
	return nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(products), nil
}

// UploadImage stores the file and points the product's image reference at it.
func (s *Service) UploadImage(
	ctx context.Context,
	id int,
	file io.Reader,
	filename string,
	contentType string,
) (*Product, error) {

	if s.images == nil {
		return nil, ErrImageStoreDisabled
	}

	if err := ValidateImageExtension(filename); err != nil {
		return nil, err
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	key := ImageObjectKey(id, filename)
	url, err := s.images.Upload(ctx, key, file, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	p.Image = url
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"product_id": id, "key": key}).Info("product image uploaded")
	return p, nil
}

// ImageObjectKey is products/<id>/<uuid><ext>.
func ImageObjectKey(productID int, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("products/%d/%s%s", productID, uuid.New().String(), ext)
}
