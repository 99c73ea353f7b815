package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mdasifmahmuddev/banglabaari-server/models"
	"github.com/mdasifmahmuddev/banglabaari-server/utils"
)

// SeedProducts inserts a small demo catalog when the products table is empty.
// Guarded by SEED_PRODUCTS so production starts stay untouched.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{
			Title:            "Premium Winter Wool Jacket",
			ShortDescription: "Luxurious wool blend jacket for Bangladesh's winter",
			FullDescription:  "Our Premium Winter Wool Jacket combines timeless elegance with modern comfort. Perfect for Dhaka's winter season.",
			Price:            4500,
			DiscountPrice:    3999,
			Category:         models.CategoryJacket,
			Sizes:            []string{"M", "L", "XL", "XXL"},
			Colors: []models.ProductColor{
				{Name: "Charcoal Black", HexCode: "#2C2C2C"},
				{Name: "Navy Blue", HexCode: "#1B2845"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=800&q=80",
				"https://images.unsplash.com/photo-1490578474895-699cd4e2cf59?w=800&q=80",
			},
			Stock:    25,
			Featured: true,
		},
		{
			Title:            "Classic Formal Full Shirt",
			ShortDescription: "Premium cotton formal shirt with wrinkle-free fabric",
			FullDescription:  "Elevate your professional wardrobe with our Classic Formal Full Shirt. Made from 100% premium cotton.",
			Price:            1800,
			DiscountPrice:    1599,
			Category:         models.CategoryFullShirt,
			Sizes:            []string{"S", "M", "L", "XL", "XXL"},
			Colors: []models.ProductColor{
				{Name: "Pure White", HexCode: "#FFFFFF"},
				{Name: "Sky Blue", HexCode: "#87CEEB"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=800&q=80",
			},
			Stock:    50,
			Featured: true,
		},
		{
			Title:            "Merino Wool Sweater",
			ShortDescription: "Soft merino wool sweater with ribbed texture",
			FullDescription:  "Experience luxury comfort with our Merino Wool Sweater. Lightweight yet warm.",
			Price:            2800,
			DiscountPrice:    2499,
			Category:         models.CategorySweater,
			Sizes:            []string{"M", "L", "XL"},
			Colors: []models.ProductColor{
				{Name: "Oatmeal Beige", HexCode: "#D4AF7A"},
				{Name: "Forest Green", HexCode: "#228B22"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=800&q=80",
			},
			Stock:    30,
			Featured: true,
		},
		{
			Title:            "Premium Cotton Trousers",
			ShortDescription: "Tailored cotton trousers with perfect fit",
			FullDescription:  "Smart-casual trousers cut from breathable cotton twill, tailored for all-day wear.",
			Price:            2200,
			DiscountPrice:    1999,
			Category:         models.CategoryTrouser,
			Sizes:            []string{"30", "32", "34", "36"},
			Colors: []models.ProductColor{
				{Name: "Khaki", HexCode: "#C3B091"},
				{Name: "Black", HexCode: "#000000"},
			},
			Images: []string{
				"https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=800&q=80",
			},
			Stock: 40,
		},
	}

	if err := db.Create(&products).Error; err != nil {
		return err
	}
	utils.Logger.Info("demo catalog seeded", zap.Int("products", len(products)))
	return nil
}
