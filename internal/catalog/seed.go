// Package catalog carries the demo product fixtures and seeds them into
// an empty store.
package catalog

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/kynarochlani2006/storefront-api/internal/models"
	"github.com/kynarochlani2006/storefront-api/internal/store"
)

type fixture struct {
	Name     string
	Price    float64
	OldPrice float64 // zero means none
	ImageURL string
	Rating   float64
	Reviews  int
	Tag      string // zero means none
	Category string
}

var fixtures = []fixture{
	{
		Name:     "HAVIT HV-G92 Gamepad",
		Price:    160,
		ImageURL: "/assets/air-zoom-pegasus-37-9a8c07ab-fb12-40ab-ad5c-ed21ce63aaf9.png",
		Rating:   4.8,
		Reviews:  88,
		Category: "Women",
	},
	{
		Name:     "HAVIT HV-G92 Gamepad",
		Price:    160,
		ImageURL: "/assets/Maroon-d96f3d53-140d-4bf1-93ac-f867bffda2a1.png",
		Rating:   4.8,
		Reviews:  88,
		Category: "Men",
	},
	{
		Name:     "HAVIT HV-G92 Gamepad",
		Price:    160,
		ImageURL: "/assets/air-max-90-flyease-31be8905-ecb7-4de5-a555-2a761100071d.png",
		Rating:   4.7,
		Reviews:  88,
		Category: "Kids",
	},
	{
		Name:     "HAVIT HV-G92 Gamepad",
		Price:    960,
		OldPrice: 1160,
		ImageURL: "/assets/cosmic-unity-d03f394b-428f-4790-bceb-eeaa3c3a7f42.png",
		Rating:   4.8,
		Reviews:  75,
		Tag:      "-35%",
		Category: "Classics",
	},
	{
		Name:     "HAVIT HV-G92 Gamepad",
		Price:    160,
		ImageURL: "/assets/air-max-90-flyease-31be8905-ecb7-4de5-a555-2a761100071d.png",
		Rating:   4.6,
		Reviews:  88,
		Category: "Sport",
	},
	{
		Name:     "HAVIT HV-G92 Gamepad",
		Price:    960,
		OldPrice: 1160,
		ImageURL: "/assets/cosmic-unity-d03f394b-428f-4790-bceb-eeaa3c3a7f42.png",
		Rating:   4.8,
		Reviews:  75,
		Tag:      "-35%",
		Category: "Sale",
	},
	{
		Name:     "HAVIT HV-G92 Gamepad",
		Price:    160,
		ImageURL: "/assets/Maroon-d96f3d53-140d-4bf1-93ac-f867bffda2a1.png",
		Rating:   4.8,
		Reviews:  88,
		Category: "Women",
	},
	{
		Name:     "HAVIT HV-G92 Gamepad",
		Price:    960,
		OldPrice: 1160,
		ImageURL: "/assets/air-zoom-pegasus-37-9a8c07ab-fb12-40ab-ad5c-ed21ce63aaf9.png",
		Rating:   4.8,
		Reviews:  75,
		Tag:      "-35%",
		Category: "Men",
	},
}

// Seed inserts the demo catalog into an empty store. A non-empty
// catalog is left alone so reseeding a live database is harmless.
// Timestamps step by a millisecond to keep the listing order stable,
// and slugs get an id suffix because fixture names repeat.
func Seed(ctx context.Context, s store.Store) error {
	count, err := s.CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Catalog already has %d products, skipping seed", count)
		return nil
	}

	base := time.Now().UTC()
	for i, f := range fixtures {
		id := uuid.NewString()
		p := &models.Product{
			ID:        id,
			Slug:      slug.Make(f.Name) + "-" + id[:8],
			Name:      f.Name,
			Price:     f.Price,
			ImageURL:  f.ImageURL,
			Rating:    f.Rating,
			Reviews:   f.Reviews,
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		}
		if f.OldPrice > 0 {
			op := f.OldPrice
			p.OldPrice = &op
		}
		if f.Tag != "" {
			tag := f.Tag
			p.Tag = &tag
		}
		if f.Category != "" {
			cat := f.Category
			p.Category = &cat
		}

		if err := s.CreateProduct(ctx, p); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d catalog products", len(fixtures))
	return nil
}
