package nutrition

import (
	"testing"

	"nutriplan/internal/models"

	"github.com/stretchr/testify/assert"
)

func chickenBreast() models.FoodItem {
	return models.FoodItem{
		ID:   1,
		Name: "Chicken Breast",
		Nutrition: &models.NutritionProfile{
			Calories:      165,
			Protein:       31,
			Carbohydrates: 0,
			Fats:          3.6,
		},
		ServingSizes: []models.ServingSize{
			{Description: "fillet", Quantity: 100, Unit: "g"},
		},
	}
}

func TestIngredientTotalsScalesLinearly(t *testing.T) {
	food := chickenBreast()

	// 100g against the 100g serving size is ratio 1; 200g doubles it.
	single := IngredientTotals(&food, 100)
	double := IngredientTotals(&food, 200)

	assert.InDelta(t, 165, single.Calories, 1e-9)
	assert.InDelta(t, 31, single.Protein, 1e-9)
	assert.InDelta(t, 2*single.Calories, double.Calories, 1e-9)
	assert.InDelta(t, 2*single.Protein, double.Protein, 1e-9)
	assert.InDelta(t, 2*single.Fats, double.Fats, 1e-9)
}

func TestIngredientTotalsUsesFirstServingSize(t *testing.T) {
	food := chickenBreast()
	food.ServingSizes = []models.ServingSize{
		{Description: "fillet", Quantity: 120, Unit: "g"},
		{Description: "half fillet", Quantity: 60, Unit: "g"},
	}

	// 240g over the first-listed 120g serving is ratio 2; the 60g size is
	// ignored.
	totals := IngredientTotals(&food, 240)
	assert.InDelta(t, (2.0)*165, totals.Calories, 1e-9)
}

// Items without serving sizes use the raw quantity as the scaling ratio, even
// though the nutrition values are per 100 units. Changing this would silently
// rescale every stored recipe, so the behavior is pinned here.
func TestIngredientTotalsRawQuantityFallback(t *testing.T) {
	food := chickenBreast()
	food.ServingSizes = nil

	totals := IngredientTotals(&food, 150)

	assert.InDelta(t, 150*165, totals.Calories, 1e-9)
	assert.InDelta(t, 150*31, totals.Protein, 1e-9)
}

func TestIngredientTotalsZeroQuantityServingSizeFallsBack(t *testing.T) {
	food := chickenBreast()
	food.ServingSizes = []models.ServingSize{
		{Description: "broken", Quantity: 0, Unit: "g"},
	}

	totals := IngredientTotals(&food, 2)
	assert.InDelta(t, 2*165, totals.Calories, 1e-9)
}

func TestIngredientTotalsNilNutrition(t *testing.T) {
	food := models.FoodItem{ID: 2, Name: "Water"}

	totals := IngredientTotals(&food, 10)
	assert.Equal(t, Totals{}, totals)
}

func TestRecipeTotalsSumsIngredients(t *testing.T) {
	chicken := chickenBreast()
	rice := models.FoodItem{
		ID:   2,
		Name: "Brown Rice",
		Nutrition: &models.NutritionProfile{
			Calories:      112,
			Protein:       2.6,
			Carbohydrates: 23.5,
			Fats:          0.9,
		},
		ServingSizes: []models.ServingSize{
			{Description: "cup", Quantity: 195, Unit: "g"},
		},
	}

	recipe := models.Recipe{
		ID:   1,
		Name: "Chicken and Rice",
		Ingredients: []models.RecipeIngredient{
			{FoodItem: chicken, Quantity: 200},
			{FoodItem: rice, Quantity: 195},
		},
	}

	// 200g chicken is two 100g servings; 195g rice is one cup.
	totals := RecipeTotals(&recipe)
	assert.InDelta(t, 2*165+112, totals.Calories, 1e-9)
	assert.InDelta(t, 2*31+2.6, totals.Protein, 1e-9)
	assert.InDelta(t, 23.5, totals.Carbs, 1e-9)
	assert.InDelta(t, 2*3.6+0.9, totals.Fats, 1e-9)
}

func TestMealTotalsCrossChecksIngredientsAndRecipes(t *testing.T) {
	chicken := chickenBreast()
	recipe := models.Recipe{
		ID:   1,
		Name: "Plain Chicken",
		Ingredients: []models.RecipeIngredient{
			{FoodItem: chicken, Quantity: 1},
		},
	}
	meal := models.Meal{
		ID:       1,
		MealType: models.MealTypeLunch,
		Ingredients: []models.MealIngredient{
			{FoodItem: chicken, Quantity: 1},
		},
		Recipes: []*models.Recipe{&recipe},
	}

	mealTotals := MealTotals(&meal)
	recipeTotals := RecipeTotals(&recipe)
	direct := IngredientTotals(&chicken, 1)

	assert.InDelta(t, recipeTotals.Calories+direct.Calories, mealTotals.Calories, 1e-9)
	assert.InDelta(t, recipeTotals.Protein+direct.Protein, mealTotals.Protein, 1e-9)
}

// Rounding happens only at the representation boundary; intermediate sums keep
// full precision so three ingredients of 0.04 calories do not vanish.
func TestRoundingOnlyAtRepresentation(t *testing.T) {
	tiny := models.FoodItem{
		ID:   3,
		Name: "Trace",
		Nutrition: &models.NutritionProfile{
			Calories: 0.04,
		},
		ServingSizes: []models.ServingSize{
			{Description: "unit", Quantity: 1, Unit: "g"},
		},
	}
	recipe := models.Recipe{
		ID: 2,
		Ingredients: []models.RecipeIngredient{
			{FoodItem: tiny, Quantity: 1},
			{FoodItem: tiny, Quantity: 1},
			{FoodItem: tiny, Quantity: 1},
		},
	}

	totals := RecipeTotals(&recipe)
	assert.InDelta(t, 0.12, totals.Calories, 1e-9)

	rep := BuildRecipe(&recipe, NewMemo())
	assert.Equal(t, 0.1, rep.Calories)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 0.1, Round1(0.05))
	assert.Equal(t, 1.2, Round1(1.24))
	assert.Equal(t, 1.3, Round1(1.25))
	assert.Equal(t, 0.0, Round1(0.04))
}

func TestMemoComputesRecipeOnce(t *testing.T) {
	chicken := chickenBreast()
	recipe := models.Recipe{
		ID: 7,
		Ingredients: []models.RecipeIngredient{
			{FoodItem: chicken, Quantity: 1},
		},
	}

	memo := NewMemo()
	first := memo.RecipeTotals(&recipe)

	// Mutating the recipe after the first computation must not change the
	// memoized result within the same pass.
	recipe.Ingredients[0].Quantity = 100
	second := memo.RecipeTotals(&recipe)

	assert.Equal(t, first, second)
}

func TestMemoSkipsUnsavedEntities(t *testing.T) {
	chicken := chickenBreast()
	recipe := models.Recipe{
		ID: 0,
		Ingredients: []models.RecipeIngredient{
			{FoodItem: chicken, Quantity: 1},
		},
	}

	memo := NewMemo()
	first := memo.RecipeTotals(&recipe)
	recipe.Ingredients[0].Quantity = 2
	second := memo.RecipeTotals(&recipe)

	assert.NotEqual(t, first, second)
}

func TestPricePerGramProtein(t *testing.T) {
	price := 9.5
	priceQuantity := 1000.0
	food := chickenBreast()
	food.Price = &price
	food.PriceQuantity = &priceQuantity

	value, ok := food.PricePerGramProtein()
	assert.True(t, ok)
	// 9.50 for 1000g at 31g protein per 100g = 310g protein.
	assert.InDelta(t, 9.5/310.0, value, 1e-9)
}

func TestPricePerGramProteinUndefined(t *testing.T) {
	price := 9.5
	priceQuantity := 1000.0

	noPrice := chickenBreast()
	_, ok := noPrice.PricePerGramProtein()
	assert.False(t, ok)

	noProtein := chickenBreast()
	noProtein.Price = &price
	noProtein.PriceQuantity = &priceQuantity
	noProtein.Nutrition.Protein = 0
	_, ok = noProtein.PricePerGramProtein()
	assert.False(t, ok)

	zeroQuantity := chickenBreast()
	zero := 0.0
	zeroQuantity.Price = &price
	zeroQuantity.PriceQuantity = &zero
	_, ok = zeroQuantity.PricePerGramProtein()
	assert.False(t, ok)
}

func TestBuildFoodItemOmitsUndefinedPriceMetric(t *testing.T) {
	food := chickenBreast()
	rep := BuildFoodItem(&food)
	assert.Nil(t, rep.PricePerGramProtein)

	price := 9.5
	priceQuantity := 1000.0
	food.Price = &price
	food.PriceQuantity = &priceQuantity
	rep = BuildFoodItem(&food)
	assert.NotNil(t, rep.PricePerGramProtein)
}

func TestBuildMealRoundsToOneDecimal(t *testing.T) {
	food := models.FoodItem{
		ID:   4,
		Name: "Odd",
		Nutrition: &models.NutritionProfile{
			Calories: 33.333,
			Protein:  6.666,
		},
		ServingSizes: []models.ServingSize{
			{Description: "unit", Quantity: 1, Unit: "g"},
		},
	}
	meal := models.Meal{
		ID:       9,
		MealType: models.MealTypeSnack,
		Ingredients: []models.MealIngredient{
			{FoodItem: food, Quantity: 1},
		},
	}

	rep := BuildMeal(&meal, NewMemo())
	assert.Equal(t, 33.3, rep.Calories)
	assert.Equal(t, 6.7, rep.ProteinG)
}
