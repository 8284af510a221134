package database

import (
	"fmt"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

type seedProduct struct {
	name        string
	description string
	category    string // seed category name, empty for none
	price       float64
	stock       int
}

var seedCategories = []models.Category{
	{Name: "Shrubs", Description: "Evergreen and deciduous shrubs of all shapes, sizes and colours."},
	{Name: "Trees", Description: "Deciduous, evergreen, and fruit trees."},
	{Name: "Perennials", Description: "Perennial plants to suit every garden. Colour and interest year after year."},
}

var seedProducts = []seedProduct{
	{"Spirea Japonica", "Popular fast growing, easy to cultivate, prolific flowering shrub. Clusters of tiny pink flowers. Hardy. Deciduous", "Shrubs", 10.99, 5},
	{"Heucera", "Small evergreen plant with beauiful bright purple leaves and dainty pink flowers. Hardy.", "Perennials", 4.99, 25},
	{"Corylus avellana", "Purple twisted hazel tree. Deciduous corkscrew hazel with distinctive dark purple leaves and curled branches and trunk.", "Trees", 40.99, 4},
	{"Geum 'Mai Tai'", "Compact hardy perennial with a fruity cocktail blend of peach, pink and apricot flowers from late-spring to mid-summer.", "Perennials", 3.99, 18},
	{"Salvia officinalis (Sage)", "Common sage. Perennial evergreen subshrub herb, with fragrant greyish leaves. Fantastic for cooking.", "Perennials", 3.49, 11},
	{"Morus Alba", "White mulberry. Deciduous fruit tree with small white edible berries.", "Trees", 25.99, 3},
	{"Buxus sempervirens", "Common box. Excellent evergreen hedging and topiary plant. ", "Shrubs", 5.99, 68},
}

// Seed inserts the fixed sample catalog: 3 categories and 7 products.
// Cross-references are wired through a name-to-id map populated as each
// category insert completes, so no insertion-order assumption is needed.
func Seed(categories repositories.CategoryRepository, products repositories.ProductRepository) error {
	categoryIDs := make(map[string]string, len(seedCategories))
	for _, c := range seedCategories {
		category := c
		if err := categories.Create(&category); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", category.Name, err)
		}
		categoryIDs[category.Name] = category.ID
		log.Printf("Seeded category: %s (ID: %s)", category.Name, category.ID)
	}

	for _, p := range seedProducts {
		product := models.Product{
			Name:        p.name,
			Description: p.description,
			Price:       p.price,
			Stock:       p.stock,
			CategoryID:  categoryIDs[p.category],
		}
		if err := products.Create(&product); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", product.Name, err)
		}
		log.Printf("Seeded product: %s (ID: %s)", product.Name, product.ID)
	}
	return nil
}
