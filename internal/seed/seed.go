// Package seed provides the demo catalog the server starts with. IDs are
// fixed so restarts keep URLs stable.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/eststy/eststy/internal/domain"
)

var (
	sellerWillowClay = uuid.MustParse("5f1e6a9c-0d2b-4f3a-8c1d-1a2b3c4d5e6f")
	sellerSilverline = uuid.MustParse("7a8b9c0d-1e2f-4a3b-9c8d-2b3c4d5e6f70")
	sellerThreadloom = uuid.MustParse("9c0d1e2f-3a4b-4c5d-8e9f-3c4d5e6f7081")
	sellerAtticFinds = uuid.MustParse("0d1e2f3a-4b5c-4d6e-9f80-4d5e6f708192")
	sellerPaperBirch = uuid.MustParse("1e2f3a4b-5c6d-4e7f-8091-5e6f708192a3")
)

// Sellers returns the demo shop owners.
func Sellers() []domain.Seller {
	return []domain.Seller{
		{ID: sellerWillowClay, Name: "Maya Torres", ShopName: "Willow & Clay", Rating: 4.9, TotalSales: 3120, Verified: true},
		{ID: sellerSilverline, Name: "June Park", ShopName: "Silverline Studio", Rating: 4.8, TotalSales: 1876, Verified: true},
		{ID: sellerThreadloom, Name: "Ana Sofia Reyes", ShopName: "Threadloom", Rating: 4.6, TotalSales: 954},
		{ID: sellerAtticFinds, Name: "Theo Brandt", ShopName: "Attic Finds", Rating: 4.7, TotalSales: 2201, Verified: true},
		{ID: sellerPaperBirch, Name: "Iris Kowalski", ShopName: "Paper Birch Prints", Rating: 4.5, TotalSales: 640},
	}
}

// Products returns the demo catalog. Timestamps and discount windows are
// anchored to now so the storefront always has live sales.
func Products(now time.Time) []domain.Product {
	return []domain.Product{
		{
			ID:          uuid.MustParse("2f3a4b5c-6d7e-4f80-91a2-6f708192a3b4"),
			Name:        "Hand-thrown stoneware mug",
			Description: "A 12oz mug glazed in speckled cream. Each one comes off the wheel slightly different.",
			PriceCents:  2800,
			Category:    domain.CategoryCeramics,
			Rating:      4.8,
			ReviewCount: 412,
			Tags:        []string{"mug", "kitchen", "gift"},
			Materials:   []string{"stoneware"},
			ImageURL:    "https://img.eststy.dev/mug.jpg",
			Inventory:   domain.Inventory{StockQuantity: 24, InStock: true, MaxOrderQuantity: 10},
			CreatedAt:   now.AddDate(0, -4, 0),
			SellerID:    sellerWillowClay,
		},
		{
			ID:          uuid.MustParse("3a4b5c6d-7e8f-4091-a2b3-708192a3b4c5"),
			Name:        "Matte white bud vase",
			Description: "Small wheel-thrown porcelain vase, about 4in tall.",
			PriceCents:  3400,
			Category:    domain.CategoryCeramics,
			Rating:      4.6,
			ReviewCount: 98,
			Tags:        []string{"vase", "minimal"},
			Materials:   []string{"porcelain"},
			ImageURL:    "https://img.eststy.dev/vase.jpg",
			Inventory:   domain.Inventory{StockQuantity: 11, InStock: true, MaxOrderQuantity: 4},
			CreatedAt:   now.AddDate(0, -2, -12),
			SellerID:    sellerWillowClay,
		},
		{
			ID:          uuid.MustParse("4b5c6d7e-8f90-41a2-b3c4-8192a3b4c5d6"),
			Name:        "Silver leaf necklace",
			Description: "Sterling silver leaf pendant on an 18in chain. Optional engraving on the back.",
			PriceCents:  12400,
			Category:    domain.CategoryJewelry,
			Rating:      4.9,
			ReviewCount: 530,
			Tags:        []string{"necklace", "gift", "engraving"},
			Materials:   []string{"sterling silver"},
			ImageURL:    "https://img.eststy.dev/necklace.jpg",
			Inventory:   domain.Inventory{StockQuantity: 9, InStock: true, MaxOrderQuantity: 5},
			CreatedAt:   now.AddDate(0, -1, -3),
			SellerID:    sellerSilverline,
		},
		{
			ID:          uuid.MustParse("5c6d7e8f-90a1-42b3-c4d5-92a3b4c5d6e7"),
			Name:        "Hammered brass hoops",
			Description: "Lightweight hand-hammered hoops, hypoallergenic posts.",
			PriceCents:  5600,
			Category:    domain.CategoryJewelry,
			Rating:      4.7,
			ReviewCount: 201,
			Tags:        []string{"earrings"},
			Materials:   []string{"brass"},
			ImageURL:    "https://img.eststy.dev/hoops.jpg",
			Inventory:   domain.Inventory{StockQuantity: 30, InStock: true, MaxOrderQuantity: 6},
			Discount: &domain.Discount{
				Percentage: 20,
				StartsAt:   now.AddDate(0, 0, -3),
				EndsAt:     now.AddDate(0, 0, 11),
				Active:     true,
			},
			CreatedAt: now.AddDate(0, -5, 0),
			SellerID:  sellerSilverline,
		},
		{
			ID:          uuid.MustParse("6d7e8f90-a1b2-43c4-d5e6-a3b4c5d6e7f8"),
			Name:        "Woven wall hanging",
			Description: "Hand-woven cotton and wool wall art in warm neutrals, about 40cm wide.",
			PriceCents:  8900,
			Category:    domain.CategoryHomeDecor,
			Rating:      4.4,
			ReviewCount: 77,
			Tags:        []string{"weaving", "wall art", "boho"},
			Materials:   []string{"cotton", "wool"},
			ImageURL:    "https://img.eststy.dev/hanging.jpg",
			Inventory:   domain.Inventory{StockQuantity: 4, InStock: true, MaxOrderQuantity: 2},
			CreatedAt:   now.AddDate(0, -7, 0),
			SellerID:    sellerThreadloom,
		},
		{
			ID:          uuid.MustParse("7e8f90a1-b2c3-44d5-e6f7-b4c5d6e7f809"),
			Name:        "Block-print linen tote",
			Description: "Heavy linen tote with a hand block-printed fern pattern.",
			PriceCents:  4200,
			Category:    domain.CategoryBags,
			Rating:      4.5,
			ReviewCount: 143,
			Tags:        []string{"tote", "linen", "everyday"},
			Materials:   []string{"linen"},
			ImageURL:    "https://img.eststy.dev/tote.jpg",
			Inventory:   domain.Inventory{StockQuantity: 18, InStock: true, MaxOrderQuantity: 8},
			Discount: &domain.Discount{
				Percentage: 10,
				StartsAt:   now.AddDate(0, 0, -1),
				EndsAt:     now.AddDate(0, 0, 6),
				Active:     true,
			},
			CreatedAt: now.AddDate(0, -3, -20),
			SellerID:  sellerThreadloom,
		},
		{
			ID:          uuid.MustParse("8f90a1b2-c3d4-45e6-f708-c5d6e7f8091a"),
			Name:        "Vintage rangefinder camera",
			Description: "1962 rangefinder, fully serviced and film-tested. Sold as-is with original case.",
			PriceCents:  18900,
			Category:    domain.CategoryVintage,
			Rating:      4.9,
			ReviewCount: 36,
			Tags:        []string{"camera", "film", "collectible"},
			ImageURL:    "https://img.eststy.dev/camera.jpg",
			Inventory:   domain.Inventory{StockQuantity: 1, InStock: true, MaxOrderQuantity: 1},
			CreatedAt:   now.AddDate(-1, -2, 0),
			SellerID:    sellerAtticFinds,
		},
		{
			ID:          uuid.MustParse("90a1b2c3-d4e5-46f7-0819-d6e7f8091a2b"),
			Name:        "Mid-century desk clock",
			Description: "Restored 1950s desk clock with a new quartz movement.",
			PriceCents:  7600,
			Category:    domain.CategoryVintage,
			Rating:      4.3,
			ReviewCount: 52,
			Tags:        []string{"clock", "mid-century"},
			ImageURL:    "https://img.eststy.dev/clock.jpg",
			Inventory:   domain.Inventory{StockQuantity: 0, InStock: false, MaxOrderQuantity: 1},
			CreatedAt:   now.AddDate(0, -10, 0),
			SellerID:    sellerAtticFinds,
		},
		{
			ID:          uuid.MustParse("a1b2c3d4-e5f6-4708-192a-e7f8091a2b3c"),
			Name:        "Botanical riso print set",
			Description: "Set of three A5 risograph prints on recycled paper.",
			PriceCents:  2900,
			Category:    domain.CategoryArt,
			Rating:      4.6,
			ReviewCount: 88,
			Tags:        []string{"print", "riso", "botanical"},
			Materials:   []string{"recycled paper"},
			ImageURL:    "https://img.eststy.dev/prints.jpg",
			Inventory:   domain.Inventory{StockQuantity: 40, InStock: true, MaxOrderQuantity: 10},
			CreatedAt:   now.AddDate(0, 0, -25),
			SellerID:    sellerPaperBirch,
		},
		{
			ID:          uuid.MustParse("b2c3d4e5-f607-4819-2a3b-f8091a2b3c4d"),
			Name:        "Hand-knit wool beanie",
			Description: "Chunky merino beanie, knit to order. Choose a label color at checkout.",
			PriceCents:  3800,
			Category:    domain.CategoryClothing,
			Rating:      4.7,
			ReviewCount: 167,
			Tags:        []string{"beanie", "winter", "merino"},
			Materials:   []string{"merino wool"},
			ImageURL:    "https://img.eststy.dev/beanie.jpg",
			Inventory:   domain.Inventory{StockQuantity: 15, InStock: true, MaxOrderQuantity: 5},
			CreatedAt:   now.AddDate(0, -1, -14),
			SellerID:    sellerThreadloom,
		},
		{
			ID:          uuid.MustParse("c3d4e5f6-0718-492a-3b4c-091a2b3c4d5e"),
			Name:        "Wooden stacking toy",
			Description: "Maple stacking rings finished with food-safe oil.",
			PriceCents:  4500,
			Category:    domain.CategoryToys,
			Rating:      4.8,
			ReviewCount: 231,
			Tags:        []string{"baby", "wood", "montessori"},
			Materials:   []string{"maple"},
			ImageURL:    "https://img.eststy.dev/stacker.jpg",
			Inventory:   domain.Inventory{StockQuantity: 22, InStock: true, MaxOrderQuantity: 4},
			CreatedAt:   now.AddDate(0, -6, -8),
			SellerID:    sellerWillowClay,
		},
		{
			ID:          uuid.MustParse("d4e5f607-1829-4a3b-4c5d-1a2b3c4d5e6f"),
			Name:        "Speckled serving bowl",
			Description: "Large stoneware serving bowl, dishwasher safe.",
			PriceCents:  6200,
			Category:    domain.CategoryCeramics,
			Rating:      4.5,
			ReviewCount: 64,
			Tags:        []string{"bowl", "kitchen", "serving"},
			Materials:   []string{"stoneware"},
			ImageURL:    "https://img.eststy.dev/bowl.jpg",
			Inventory:   domain.Inventory{StockQuantity: 7, InStock: true, MaxOrderQuantity: 3},
			Discount: &domain.Discount{
				Percentage: 15,
				StartsAt:   now.AddDate(0, 0, -5),
				EndsAt:     now.AddDate(0, 0, 9),
				Active:     true,
			},
			CreatedAt: now.AddDate(0, -2, 0),
			SellerID:  sellerWillowClay,
		},
	}
}
