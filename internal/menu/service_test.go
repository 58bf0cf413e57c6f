package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"aufburger/internal/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageStore struct {
	keys []string
	err  error
}

func (f *fakeImageStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func newTestService(images ImageStore) *Service {
	return NewService(NewInMemoryRepository(DefaultProducts()), images, logger.NewNop())
}

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestCreate_AssignsNextIDAndDefaults(t *testing.T) {
	s := newTestService(nil)

	p, err := s.Create(context.Background(), ProductInput{
		Name:     "Mushroom Swiss",
		Price:    price("14.49"),
		Category: "Gourmet",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, p.ID)
	assert.Equal(t, DefaultRating, p.Rating)
	assert.Equal(t, DefaultImage, p.Image)

	got, err := s.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Mushroom Swiss", got.Name)
}

func TestCreate_Validation(t *testing.T) {
	s := newTestService(nil)
	ctx := context.Background()
	bad := 6.0

	_, err := s.Create(ctx, ProductInput{Price: price("1"), Category: "Classic"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = s.Create(ctx, ProductInput{Name: "x", Category: "Classic"})
	assert.ErrorIs(t, err, ErrPriceRequired)

	_, err = s.Create(ctx, ProductInput{Name: "x", Price: price("-1"), Category: "Classic"})
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = s.Create(ctx, ProductInput{Name: "x", Price: price("1"), Category: "Sushi"})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = s.Create(ctx, ProductInput{Name: "x", Price: price("1"), Category: "Classic", Rating: &bad})
	assert.ErrorIs(t, err, ErrRatingOutOfRange)
}

func TestUpdateAndDelete(t *testing.T) {
	s := newTestService(nil)
	ctx := context.Background()

	p, err := s.Update(ctx, 6, ProductInput{Name: "Classic Cheeseburger", Price: price("13.49"), Category: "Classic"})
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("13.49")))

	_, err = s.Update(ctx, 99, ProductInput{Name: "Ghost", Price: price("1"), Category: "Classic"})
	assert.ErrorIs(t, err, ErrProductNotFound)

	require.NoError(t, s.Delete(ctx, 6))
	_, err = s.Get(ctx, 6)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, s.Delete(ctx, 6), ErrProductNotFound)
}

func TestStats(t *testing.T) {
	s := newTestService(nil)

	stats, err := s.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalItems)
	assert.Equal(t, CategoryPremium, stats.TopCategory)
	// (18.99+16.99+15.99+14.99+21.99+12.99)/6
	assert.Equal(t, "16.99", stats.AvgPrice.StringFixed(2))
	assert.InDelta(t, 4.7166, stats.AvgRating, 0.001)
}

func TestComputeStats_EmptyAndTies(t *testing.T) {
	empty := ComputeStats(nil)
	assert.Equal(t, 0, empty.TotalItems)
	assert.True(t, empty.AvgPrice.IsZero())
	assert.Equal(t, CategorySignature, empty.TopCategory)

	tie := ComputeStats([]Product{
		{ID: 1, Category: CategorySpicy, Price: decimal.NewFromInt(10), Rating: 4},
		{ID: 2, Category: CategoryClassic, Price: decimal.NewFromInt(10), Rating: 4},
	})
	assert.Equal(t, CategoryClassic, tie.TopCategory)
}

func TestUploadImage(t *testing.T) {
	store := &fakeImageStore{}
	s := newTestService(store)

	p, err := s.UploadImage(context.Background(), 1, bytes.NewBufferString("png"), "burger.PNG", "image/png")
	require.NoError(t, err)

	require.Len(t, store.keys, 1)
	assert.Regexp(t, `^products/1/[0-9a-f-]{36}\.png$`, store.keys[0])
	assert.Equal(t, "https://cdn.example.com/"+store.keys[0], p.Image)
}

func TestUploadImage_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := newTestService(nil).UploadImage(ctx, 1, bytes.NewBufferString(""), "a.png", "")
	assert.ErrorIs(t, err, ErrImageStoreDisabled)

	_, err = newTestService(&fakeImageStore{}).UploadImage(ctx, 1, bytes.NewBufferString(""), "a.exe", "")
	assert.ErrorIs(t, err, ErrImageExtension)

	_, err = newTestService(&fakeImageStore{}).UploadImage(ctx, 42, bytes.NewBufferString(""), "a.png", "")
	assert.ErrorIs(t, err, ErrProductNotFound)

	boom := errors.New("boom")
	_, err = newTestService(&fakeImageStore{err: boom}).UploadImage(ctx, 1, bytes.NewBufferString(""), "a.png", "")
	assert.ErrorIs(t, err, boom)
}
