package main

import (
	"fmt"
	"log"

	"asteria/internal/models"
	"asteria/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// catalogProducts is the fixed catalog seeded at first boot. The catalog is
// read-only afterwards; stock figures are advisory.
var catalogProducts = []models.Product{
	{Name: "Diamond Necklace", Price: 1200, Description: "A dazzling necklace with a brilliant-cut center diamond set in 18k white gold.", Materials: "18k white gold, Diamond", Stock: 5},
	{Name: "Sapphire Ring", Price: 850, Description: "Elegant ring with a deep blue sapphire surrounded by small diamonds, perfect for any occasion.", Materials: "Sterling silver, Sapphire, Diamonds", Stock: 8},
	{Name: "Pearl Earrings", Price: 450, Description: "Classic and timeless, these earrings feature high-quality freshwater pearls.", Materials: "14k yellow gold, Freshwater pearls", Stock: 15},
	{Name: "Gold Bracelet", Price: 750, Description: "A fine-link bracelet in solid 18k gold, an indispensable staple in any jewelry box.", Materials: "Solid 18k gold", Stock: 12},
	{Name: "Emerald Ring", Price: 950, Description: "Cocktail ring with an oval-cut Colombian emerald, a piece that will not go unnoticed.", Materials: "18k yellow gold, Emerald", Stock: 7},
	{Name: "Silver Choker", Price: 300, Description: "Modern and minimalist, this sterling silver choker is the perfect everyday companion.", Materials: "925 sterling silver", Stock: 20},
	{Name: "Ruby Brooch", Price: 600, Description: "A vintage brooch with a floral design and a central ruby that adds a touch of color and distinction.", Materials: "Gold-plated bronze, Ruby", Stock: 4},
	{Name: "Topaz Earrings", Price: 420, Description: "Long earrings with blue topaz stones that catch the light with every movement.", Materials: "14k white gold, Blue topaz", Stock: 18},
	{Name: "Golden Moon Necklace", Price: 550, Description: "Delicate necklace with a crescent moon pendant adorned with zirconia.", Materials: "Gold vermeil, Zirconia", Stock: 25},
	{Name: "Solitaire Ring", Price: 1100, Description: "The classic solitaire ring, with a 0.5 carat diamond symbolizing eternal love.", Materials: "Platinum, Diamond", Stock: 10},
	{Name: "Rose Quartz Bracelet", Price: 280, Description: "Beaded bracelet of natural rose quartz, known for its calming properties.", Materials: "Rose quartz, Elastic cord", Stock: 30},
	{Name: "Amethyst Earrings", Price: 390, Description: "Small stud earrings with amethysts of an intense purple color.", Materials: "14k rose gold, Amethyst", Stock: 22},
	{Name: "Engagement Ring", Price: 2500, Description: "A spectacular engagement ring with a 1 carat diamond and a platinum band.", Materials: "Platinum, 1ct Diamond", Stock: 3},
	{Name: "Star Necklace", Price: 480, Description: "A playful necklace with multiple star-shaped charms, perfect for a casual look.", Materials: "Sterling silver, Zirconia", Stock: 15},
	{Name: "Infinity Bracelet", Price: 320, Description: "Symbolize eternity with this delicate bracelet carrying the infinity symbol.", Materials: "Rhodium-plated silver", Stock: 18},
	{Name: "Gold Hoop Earrings", Price: 500, Description: "Medium-sized gold hoops, a versatile classic that never goes out of style.", Materials: "18k gold", Stock: 14},
}

// seedCatalog populates the product table from the fixed catalog when it is
// empty. Boots against an already seeded store leave it untouched.
func seedCatalog(repo repositories.ProductRepository) error {
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range catalogProducts {
		product := catalogProducts[i]
		if err := repo.Create(&product); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", product.Name, err)
		}
	}
	log.Printf("Seeded catalog with %d products", len(catalogProducts))
	return nil
}

// ensureAdmin provisions the admin account at first boot if it is absent.
func ensureAdmin(repo repositories.UserRepository, username, email, password string) error {
	if _, err := repo.GetByUsername(username); err == nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		IsAdmin:      true,
	}
	if err := repo.Create(admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Printf("Provisioned admin user %q", username)
	return nil
}
