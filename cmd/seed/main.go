package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/Joaovitor770/cnx-0110/config"
	"github.com/Joaovitor770/cnx-0110/models"
	"github.com/Joaovitor770/cnx-0110/store"
	"github.com/Joaovitor770/cnx-0110/utils"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main seeds a demo catalog so the storefront has something to show.
// Usage: go run cmd/seed/main.go
// Set SEED_ADMIN_PASSWORD to also print a bcrypt hash for ADMIN_PASSWORD_HASH.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("CONEXÃO 011 - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	if password := os.Getenv("SEED_ADMIN_PASSWORD"); password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Printf("ADMIN_PASSWORD_HASH=%s\n\n", hash)
	}

	config.InitDB()
	defer config.CloseDB()

	catalogStore := store.NewCatalogStore(config.StoreGorm, config.StoreDB, nil)
	if err := catalogStore.AutoMigrate(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("✓ Database migrated")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories := []string{"Camisetas", "Moletons", "Calças", "Acessórios"}
	categoryIDs := make(map[string]int64, len(categories))
	for _, name := range categories {
		category := models.Category{Name: name, Slug: utils.Slugify(name)}
		if err := catalogStore.InsertCategory(ctx, &category); err != nil {
			log.Fatalf("Failed to seed category %q: %v", name, err)
		}
		categoryIDs[name] = category.ID
	}
	log.Printf("✓ Seeded %d categories", len(categories))

	description := "Lançamento da temporada"
	collection := models.Collection{
		Name:        "Verão 2026",
		Slug:        utils.Slugify("Verão 2026"),
		Image:       "https://placehold.co/1200x400",
		Description: &description,
	}
	if err := catalogStore.InsertCollection(ctx, &collection); err != nil {
		log.Fatalf("Failed to seed collection: %v", err)
	}
	log.Println("✓ Seeded collection")

	products := []models.Product{
		{
			Name:     "Camiseta Oversized Preta",
			Brand:    "Conexão 011",
			Price:    99.90,
			Images:   models.StringList{"https://placehold.co/600x800"},
			Category: "Camisetas",
			Sizes: models.SizesList{
				{Size: "P", Stock: 5},
				{Size: "M", Stock: 10},
				{Size: "G", Stock: 8},
			},
			Description:  "Camiseta oversized em algodão pesado.",
			CollectionID: &collection.ID,
		},
		{
			Name:     "Moletom Canguru Cinza",
			Brand:    "Conexão 011",
			Price:    219.90,
			Images:   models.StringList{"https://placehold.co/600x800"},
			Category: "Moletons",
			Sizes: models.SizesList{
				{Size: "M", Stock: 6},
				{Size: "G", Stock: 4},
				{Size: "GG", Stock: 2},
			},
			Description: "Moletom com bolso canguru e capuz forrado.",
		},
		{
			Name:     "Calça Cargo Bege",
			Brand:    "Conexão 011",
			Price:    189.90,
			Images:   models.StringList{"https://placehold.co/600x800"},
			Category: "Calças",
			Sizes: models.SizesList{
				{Size: "38", Stock: 3},
				{Size: "40", Stock: 5},
				{Size: "42", Stock: 4},
			},
			Description: "Calça cargo com bolsos laterais.",
		},
	}
	for i := range products {
		products[i].Slug = utils.Slugify(products[i].Name)
		if id, ok := categoryIDs[products[i].Category]; ok {
			products[i].CategoryID = &id
		}
		if err := catalogStore.InsertProduct(ctx, &products[i]); err != nil {
			log.Fatalf("Failed to seed product %q: %v", products[i].Name, err)
		}
	}
	log.Printf("✓ Seeded %d products", len(products))

	if _, err := catalogStore.GetSettings(ctx); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}
	log.Println("✓ Settings row present")

	fmt.Println()
	fmt.Println("✅ Seed complete. Start the server with: go run main.go")
}
