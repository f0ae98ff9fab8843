package repository

import (
	"time"

	"github.com/NihalDR/Lingam-Aabharanam/internal/model"
)

func float64Ptr(v float64) *float64 { return &v }

// defaultProducts returns the seed catalog used to initialize an empty
// product collection. Returned fresh on each call so callers can mutate
// their copy safely.
func defaultProducts() []model.Product {
	return []model.Product{
		{
			ID:          "rama-darbar-001",
			Name:        "Rama Darbar Silver Idol Set",
			Category:    model.CategoryIdol,
			Subcategory: "Religious Idols",
			Price:       899,
			Description: "Exquisite silver Rama Darbar set featuring Lord Rama, Sita, and Lakshmana",
			Details:     "This beautiful silver Rama Darbar set showcases intricate craftsmanship with detailed figurines of Lord Rama, Sita, and Lakshmana on an ornate base. Perfect for home temples and religious ceremonies.",
			Images:      []string{"/lingam-uploads/4864e13f-c954-497f-84b2-097115860304.png"},
			Weight:      "450 grams",
			Material:    "925 Sterling Silver",
			Dimensions:  "8 x 6 x 4 inches",
			InStock:     true,
			Featured:    true,
			CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "ganesha-arch-001",
			Name:        "Ganesha Temple Arch with Hanging Bells",
			Category:    model.CategoryIdol,
			Subcategory: "Temple Decoratives",
			Price:       1299,
			Description: "Ornate silver Ganesha temple arch with traditional hanging bells",
			Details:     "This magnificent temple arch features Lord Ganesha in the center with elaborate decorative work and traditional hanging bells. The intricate carvings and detailed craftsmanship make it perfect for temple decoration or home worship.",
			Images:      []string{"/lingam-uploads/bf0d11fb-2d0b-4723-99fd-12220fffcc95.png"},
			Weight:      "650 grams",
			Material:    "Pure Silver Plated",
			Dimensions:  "10 x 8 x 3 inches",
			InStock:     true,
			Featured:    true,
			CreatedAt:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "lakshmi-pendant-001",
			Name:        "Lakshmi Goddess Silver Pendant",
			Category:    model.CategoryJewelry,
			Subcategory: "Pendants",
			Price:       299,
			SalePrice:   float64Ptr(249),
			Description: "Elegant silver pendant featuring Goddess Lakshmi with chain",
			Details:     "Beautiful silver pendant showcasing Goddess Lakshmi in traditional pose, symbolizing wealth and prosperity. Comes with a matching silver chain. Perfect for daily wear or special occasions.",
			Images:      []string{"/lingam-uploads/41168ef8-ac14-4b9b-a124-5c833b88e5b9.png"},
			Weight:      "25 grams",
			Material:    "925 Sterling Silver",
			Dimensions:  "2 x 1.5 inches",
			InStock:     true,
			Featured:    false,
			CreatedAt:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "lakshmi-lotus-001",
			Name:        "Lakshmi Lotus Throne Silver Pendant",
			Category:    model.CategoryJewelry,
			Subcategory: "Pendants",
			Price:       399,
			Description: "Detailed silver pendant of Goddess Lakshmi seated on lotus with ornate design",
			Details:     "This exquisite pendant features Goddess Lakshmi seated on a lotus throne with intricate detailing and traditional motifs. The oval design with decorative border makes it a stunning piece of spiritual jewelry.",
			Images:      []string{"/lingam-uploads/9c5723ac-a40d-4312-9a6e-2bb7822705b6.png"},
			Weight:      "30 grams",
			Material:    "925 Sterling Silver",
			Dimensions:  "2.5 x 2 inches",
			InStock:     true,
			Featured:    true,
			CreatedAt:   time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		},
	}
}

// defaultTestimonials returns the seed reviews used to initialize an empty
// testimonial collection. These entries are protected from deletion.
func defaultTestimonials() []model.Testimonial {
	return []model.Testimonial{
		{
			ID:             "nihal-001",
			CustomerName:   "nihal dr",
			Content:        "Absolutely loved the craftsmanship and purity of silver in the idol! Delivery was quick and packaging was secure. Trustworthy seller.",
			Rating:         5,
			Date:           time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			IsApproved:     true,
			ShowOnHomepage: true,
		},
		{
			ID:             "anita-002",
			CustomerName:   "Anita Sharma",
			Content:        "The pendant exceeded my expectations. It's elegant and feels premium. Great purchase and fantastic customer support.",
			Rating:         4.5,
			Date:           time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
			IsApproved:     true,
			ShowOnHomepage: true,
		},
		{
			ID:             "raj-003",
			CustomerName:   "Raj Mehra",
			Content:        "Ordered a silver Lakshmi idol for a family function—everyone admired it. Highly recommended for quality and authenticity.",
			Rating:         5,
			Date:           time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			IsApproved:     true,
			ShowOnHomepage: false,
		},
	}
}

var protectedTestimonialIDs = map[string]bool{
	"nihal-001": true,
	"anita-002": true,
	"raj-003":   true,
}
