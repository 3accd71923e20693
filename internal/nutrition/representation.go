package nutrition

import (
	"time"

	"nutriplan/internal/models"
)

// Representations are the serialization contracts for catalog entities. The
// four nutrient fields are always present and rounded to one decimal.

type ServingSizeRepresentation struct {
	Description string  `json:"description" example:"1 fillet"`
	Quantity    float64 `json:"quantity" example:"120"`
	Unit        string  `json:"unit" example:"g"`
}

type FoodItemRepresentation struct {
	ID                  uint                        `json:"id" example:"1"`
	Name                string                      `json:"name" example:"Chicken Breast"`
	Price               *float64                    `json:"price,omitempty" example:"50"`
	PriceQuantity       *float64                    `json:"price_quantity,omitempty" example:"1000"`
	PriceUnit           string                      `json:"price_unit,omitempty" example:"g"`
	PricePerGramProtein *float64                    `json:"price_per_gram_protein,omitempty" example:"0.1613"`
	ServingSizes        []ServingSizeRepresentation `json:"serving_sizes"`
	Nutrition           *models.NutritionProfile    `json:"nutrition,omitempty"`
	CreatedAt           time.Time                   `json:"created_at" example:"2023-01-01T00:00:00Z"`
}

type IngredientRepresentation struct {
	ID       uint                   `json:"id" example:"1"`
	FoodItem FoodItemRepresentation `json:"food_item"`
	Quantity float64                `json:"quantity" example:"2"`
	Unit     string                 `json:"unit" example:"fillet"`
}

type RecipeRepresentation struct {
	ID           uint                       `json:"id" example:"1"`
	Name         string                     `json:"name" example:"Grilled Chicken Bowl"`
	Description  string                     `json:"description" example:"High protein lunch bowl"`
	IsPublic     bool                       `json:"is_public" example:"true"`
	Instructions []models.Instruction       `json:"instructions,omitempty"`
	Ingredients  []IngredientRepresentation `json:"ingredients"`
	Calories     float64                    `json:"calories" example:"650.5"`
	ProteinG     float64                    `json:"protein_g" example:"52.3"`
	CarbsG       float64                    `json:"carbs_g" example:"48"`
	FatsG        float64                    `json:"fats_g" example:"21.7"`
	CreatedAt    time.Time                  `json:"created_at" example:"2023-01-01T00:00:00Z"`
}

type MealRepresentation struct {
	ID          uint                       `json:"id" example:"1"`
	MealType    string                     `json:"meal_type" example:"lunch"`
	Ingredients []IngredientRepresentation `json:"ingredients"`
	Recipes     []RecipeRepresentation     `json:"recipes"`
	Calories    float64                    `json:"calories" example:"650.5"`
	ProteinG    float64                    `json:"protein_g" example:"52.3"`
	CarbsG      float64                    `json:"carbs_g" example:"48"`
	FatsG       float64                    `json:"fats_g" example:"21.7"`
	CreatedAt   time.Time                  `json:"created_at" example:"2023-01-01T00:00:00Z"`
}

func BuildFoodItem(food *models.FoodItem) FoodItemRepresentation {
	rep := FoodItemRepresentation{
		ID:            food.ID,
		Name:          food.Name,
		Price:         food.Price,
		PriceQuantity: food.PriceQuantity,
		PriceUnit:     food.PriceUnit,
		ServingSizes:  make([]ServingSizeRepresentation, 0, len(food.ServingSizes)),
		Nutrition:     food.Nutrition,
		CreatedAt:     food.CreatedAt,
	}
	for _, s := range food.ServingSizes {
		rep.ServingSizes = append(rep.ServingSizes, ServingSizeRepresentation{
			Description: s.Description,
			Quantity:    s.Quantity,
			Unit:        s.Unit,
		})
	}
	// Undefined stays nil so clients can exclude the item from rankings
	// instead of sorting it to the bottom.
	if value, ok := food.PricePerGramProtein(); ok {
		rep.PricePerGramProtein = &value
	}
	return rep
}

func buildRecipeIngredient(ing *models.RecipeIngredient) IngredientRepresentation {
	return IngredientRepresentation{
		ID:       ing.ID,
		FoodItem: BuildFoodItem(&ing.FoodItem),
		Quantity: ing.Quantity,
		Unit:     ing.Unit,
	}
}

func buildMealIngredient(ing *models.MealIngredient) IngredientRepresentation {
	return IngredientRepresentation{
		ID:       ing.ID,
		FoodItem: BuildFoodItem(&ing.FoodItem),
		Quantity: ing.Quantity,
		Unit:     ing.Unit,
	}
}

func BuildRecipe(recipe *models.Recipe, memo *Memo) RecipeRepresentation {
	totals := memo.RecipeTotals(recipe)
	rep := RecipeRepresentation{
		ID:           recipe.ID,
		Name:         recipe.Name,
		Description:  recipe.Description,
		IsPublic:     recipe.IsPublic,
		Instructions: recipe.Instructions,
		Ingredients:  make([]IngredientRepresentation, 0, len(recipe.Ingredients)),
		Calories:     Round1(totals.Calories),
		ProteinG:     Round1(totals.Protein),
		CarbsG:       Round1(totals.Carbs),
		FatsG:        Round1(totals.Fats),
		CreatedAt:    recipe.CreatedAt,
	}
	for i := range recipe.Ingredients {
		rep.Ingredients = append(rep.Ingredients, buildRecipeIngredient(&recipe.Ingredients[i]))
	}
	return rep
}

func BuildMeal(meal *models.Meal, memo *Memo) MealRepresentation {
	totals := memo.MealTotals(meal)
	rep := MealRepresentation{
		ID:          meal.ID,
		MealType:    meal.MealType,
		Ingredients: make([]IngredientRepresentation, 0, len(meal.Ingredients)),
		Recipes:     make([]RecipeRepresentation, 0, len(meal.Recipes)),
		Calories:    Round1(totals.Calories),
		ProteinG:    Round1(totals.Protein),
		CarbsG:      Round1(totals.Carbs),
		FatsG:       Round1(totals.Fats),
		CreatedAt:   meal.CreatedAt,
	}
	for i := range meal.Ingredients {
		rep.Ingredients = append(rep.Ingredients, buildMealIngredient(&meal.Ingredients[i]))
	}
	for _, recipe := range meal.Recipes {
		rep.Recipes = append(rep.Recipes, BuildRecipe(recipe, memo))
	}
	return rep
}
