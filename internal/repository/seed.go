package repository

import "github.com/casadulce/storefront/internal/domain/model"

// SeedProducts returns the built-in catalog of the pastry storefront.
// All prices are in Argentine pesos.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:          "cookies-chocolate",
			Name:        "Cookies de Chocolate",
			Description: "Deliciosas cookies artesanales con chips de chocolate belga premium",
			Category:    model.CategoryCookies,
			BasePrice:   2500,
			Currency:    model.CurrencyARS,
			Flavors: []model.Flavor{
				{ID: "chocolate-clasico", Name: "Chocolate Clásico", Available: true},
				{ID: "chocolate-blanco", Name: "Chocolate Blanco", Available: true},
				{ID: "doble-chocolate", Name: "Doble Chocolate", Available: false},
			},
			BoxSizes: []model.BoxSize{
				{ID: "small", Name: "Caja Pequeña", Quantity: 12, Price: 2500},
				{ID: "medium", Name: "Caja Mediana", Quantity: 24, Price: 4500},
				{ID: "large", Name: "Caja Grande", Quantity: 36, Price: 6000},
			},
			Images:   []string{"/images/cookies-chocolate-1.jpg", "/images/cookies-chocolate-2.jpg"},
			InStock:  true,
			Featured: true,
			Nutrition: &model.Nutrition{
				Calories:  85,
				Allergens: []string{"gluten", "huevos", "lácteos"},
			},
		},
		{
			ID:          "torta-tres-leches",
			Name:        "Torta Tres Leches",
			Description: "Tradicional torta tres leches argentina con dulce de leche artesanal",
			Category:    model.CategoryCakes,
			BasePrice:   8500,
			Currency:    model.CurrencyARS,
			Flavors: []model.Flavor{
				{ID: "clasica", Name: "Clásica", Available: true},
				{ID: "chocolate", Name: "Con Chocolate", Available: true},
				{ID: "frutas", Name: "Con Frutas", Available: true},
			},
			BoxSizes: []model.BoxSize{
				{ID: "individual", Name: "Individual", Quantity: 1, Price: 1200},
				{ID: "familiar", Name: "Familiar", Quantity: 1, Price: 8500},
			},
			Images:   []string{"/images/torta-tres-leches-1.jpg"},
			InStock:  true,
			Featured: true,
		},
		{
			ID:          "alfajores-maicena",
			Name:        "Alfajores de Maicena",
			Description: "Alfajores caseros de maicena rellenos de dulce de leche y coco rallado",
			Category:    model.CategoryCandies,
			BasePrice:   1800,
			Currency:    model.CurrencyARS,
			Flavors: []model.Flavor{
				{ID: "dulce-de-leche", Name: "Dulce de Leche", Available: true},
				{ID: "chocolate", Name: "Bañado en Chocolate", Available: true},
			},
			BoxSizes: []model.BoxSize{
				{ID: "half-dozen", Name: "Media Docena", Quantity: 6, Price: 1800},
				{ID: "dozen", Name: "Docena", Quantity: 12, Price: 3200},
			},
			Images:  []string{"/images/alfajores-maicena-1.jpg"},
			InStock: true,
			Nutrition: &model.Nutrition{
				Calories:  120,
				Allergens: []string{"gluten", "lácteos"},
			},
		},
		{
			ID:          "budin-limon",
			Name:        "Budín de Limón",
			Description: "Budín húmedo de limón con glaseado artesanal",
			Category:    model.CategoryCakes,
			BasePrice:   3500,
			Currency:    model.CurrencyARS,
			Flavors: []model.Flavor{
				{ID: "limon", Name: "Limón", Available: true},
				{ID: "limon-amapola", Name: "Limón y Amapola", Available: true},
			},
			BoxSizes: []model.BoxSize{
				{ID: "entero", Name: "Entero", Quantity: 1, Price: 3500},
			},
			Images:  []string{"/images/budin-limon-1.jpg"},
			InStock: false,
		},
	}
}
