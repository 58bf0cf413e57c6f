package menu

import "github.com/shopspring/decimal"

// DefaultProducts is the house menu served when no database is configured,
// and what cmd/catalog-seed writes into an empty products table.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Signature Auf Burger",
			Description: "Premium wagyu beef, aged cheddar, truffle aioli, arugula",
			Price:       decimal.RequireFromString("18.99"),
			Image:       "/classic-beef-burger.png",
			Category:    CategorySignature,
			Rating:      4.9,
			Ingredients: []string{"Wagyu beef patty", "Aged cheddar", "Truffle aioli", "Fresh arugula", "Brioche bun"},
			Allergens:   []string{"Gluten", "Dairy", "Eggs"},
		},
		{
			ID:          2,
			Name:        "BBQ Smoke Stack",
			Description: "Slow-smoked brisket, crispy onions, bourbon BBQ glaze",
			Price:       decimal.RequireFromString("16.99"),
			Image:       "/bbq-bacon-burger-onion-rings.png",
			Category:    CategoryPremium,
			Rating:      4.8,
			Ingredients: []string{"Slow-smoked brisket", "Crispy onions", "Bourbon BBQ sauce", "Sesame bun"},
			Allergens:   []string{"Gluten", "Soy"},
		},
		{
			ID:          3,
			Name:        "Spicy Fire Burger",
			Description: "Ghost pepper jack, jalapeños, chipotle mayo, avocado",
			Price:       decimal.RequireFromString("15.99"),
			Image:       "/spicy-jalapeno-avocado-burger.png",
			Category:    CategorySpicy,
			Rating:      4.7,
			Ingredients: []string{"Beef patty", "Ghost pepper jack", "Fresh jalapeños", "Chipotle mayo", "Avocado", "Jalapeño bun"},
			Allergens:   []string{"Gluten", "Dairy", "Eggs"},
			Spicy:       true,
		},
		{
			ID:          4,
			Name:        "Garden Supreme",
			Description: "Plant-based patty, avocado, sprouts, vegan aioli",
			Price:       decimal.RequireFromString("14.99"),
			Image:       "/vegetarian-burger.png",
			Category:    CategoryVegetarian,
			Rating:      4.6,
			Ingredients: []string{"Plant-based patty", "Avocado", "Sprouts", "Vegan aioli", "Whole wheat bun"},
			Allergens:   []string{"Gluten", "Soy"},
			Vegetarian:  true,
		},
		{
			ID:          5,
			Name:        "Double Stack Beast",
			Description: "Two beef patties, double cheese, bacon, special sauce",
			Price:       decimal.RequireFromString("21.99"),
			Image:       "/double-stack-bacon-burger.png",
			Category:    CategoryPremium,
			Rating:      4.8,
			Ingredients: []string{"Two beef patties", "Double American cheese", "Bacon", "Special sauce", "Sesame bun"},
			Allergens:   []string{"Gluten", "Dairy", "Eggs"},
		},
		{
			ID:          6,
			Name:        "Classic Cheeseburger",
			Description: "Beef patty, American cheese, lettuce, tomato, pickles",
			Price:       decimal.RequireFromString("12.99"),
			Image:       "/classic-beef-burger.png",
			Category:    CategoryClassic,
			Rating:      4.5,
			Ingredients: []string{"Beef patty", "American cheese", "Lettuce", "Tomato", "Pickles", "Brioche bun"},
			Allergens:   []string{"Gluten", "Dairy"},
		},
	}
}
