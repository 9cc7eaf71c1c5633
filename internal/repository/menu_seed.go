package repository

import "github.com/saboresunicos/ordering-service/internal/domain"

// DefaultMenu is the menu the catalog boots with until an admin edits it.
func DefaultMenu() []domain.Dish {
	return []domain.Dish{
		{
			ID:          "1",
			Title:       "Pizza Margherita",
			Description: "Pizza clásica con salsa de tomate, mozzarella fresca y albahaca",
			Price:       12.99,
			Image:       "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Pizzas",
			Available:   true,
		},
		{
			ID:          "2",
			Title:       "Hamburguesa Deluxe",
			Description: "Hamburguesa con carne premium, queso cheddar, lechuga, tomate y papas fritas",
			Price:       15.99,
			Image:       "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Hamburguesas",
			Available:   true,
		},
		{
			ID:          "3",
			Title:       "Pasta Carbonara",
			Description: "Pasta cremosa con panceta, huevo, queso parmesano y pimienta negra",
			Price:       13.50,
			Image:       "https://images.pexels.com/photos/4518843/pexels-photo-4518843.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Pastas",
			Available:   true,
		},
		{
			ID:          "4",
			Title:       "Ensalada César",
			Description: "Lechuga romana, crutones, queso parmesano y aderezo césar",
			Price:       9.99,
			Image:       "https://images.pexels.com/photos/2116094/pexels-photo-2116094.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Ensaladas",
			Available:   true,
		},
		{
			ID:          "5",
			Title:       "Sushi Roll",
			Description: "Roll de salmón con aguacate, pepino y salsa teriyaki",
			Price:       18.99,
			Image:       "https://images.pexels.com/photos/357756/pexels-photo-357756.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Sushi",
			Available:   true,
		},
		{
			ID:          "6",
			Title:       "Tacos al Pastor",
			Description: "Tres tacos con carne al pastor, piña, cebolla y cilantro",
			Price:       11.99,
			Image:       "https://images.pexels.com/photos/4958792/pexels-photo-4958792.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:    "Mexicana",
			Available:   true,
		},
	}
}
