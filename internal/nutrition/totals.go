// Package nutrition computes aggregate macro totals for recipes and meals
// from their ingredient data. Totals are always derived on demand; nothing in
// this package persists or caches results across requests.
package nutrition

import (
	"math"

	"nutriplan/internal/models"
)

// Totals accumulates the four macro fields at full precision. Rounding to one
// decimal happens only at the representation boundary.
type Totals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

func (t *Totals) Add(other Totals) {
	t.Calories += other.Calories
	t.Protein += other.Protein
	t.Carbs += other.Carbs
	t.Fats += other.Fats
}

// ingredientRatio is the scaling factor applied to a food item's per-basis
// nutrition values. When the item has a first-listed serving size with a
// positive quantity, the ratio is quantity relative to that serving size.
// When it has none, the raw quantity itself is used as the ratio. That
// fallback is unit-inconsistent with the per-100-unit basis but matches the
// existing contract and must not be changed; see the regression test.
func ingredientRatio(food *models.FoodItem, quantity float64) float64 {
	if len(food.ServingSizes) > 0 && food.ServingSizes[0].Quantity > 0 {
		return quantity / food.ServingSizes[0].Quantity
	}
	return quantity
}

// IngredientTotals returns the contribution of one food item at the given
// quantity. Items without a nutrition profile contribute nothing.
func IngredientTotals(food *models.FoodItem, quantity float64) Totals {
	if food == nil || food.Nutrition == nil {
		return Totals{}
	}
	ratio := ingredientRatio(food, quantity)
	n := food.Nutrition
	return Totals{
		Calories: ratio * n.Calories,
		Protein:  ratio * n.Protein,
		Carbs:    ratio * n.Carbohydrates,
		Fats:     ratio * n.Fats,
	}
}

// RecipeTotals sums the contributions of every ingredient of the recipe.
// The recipe must be loaded with ingredients, food items, nutrition profiles
// and serving sizes.
func RecipeTotals(recipe *models.Recipe) Totals {
	var totals Totals
	if recipe == nil {
		return totals
	}
	for i := range recipe.Ingredients {
		ing := &recipe.Ingredients[i]
		totals.Add(IngredientTotals(&ing.FoodItem, ing.Quantity))
	}
	return totals
}

// MealTotals sums direct ingredient contributions plus the totals of every
// linked recipe. Recipes nest one level only; recipes never reference other
// recipes.
func MealTotals(meal *models.Meal) Totals {
	var totals Totals
	if meal == nil {
		return totals
	}
	for i := range meal.Ingredients {
		ing := &meal.Ingredients[i]
		totals.Add(IngredientTotals(&ing.FoodItem, ing.Quantity))
	}
	for _, recipe := range meal.Recipes {
		totals.Add(RecipeTotals(recipe))
	}
	return totals
}

// Memo caches totals per entity id for the duration of one serialization
// pass, so the same meal or recipe is never recomputed while building a
// response. A Memo must not outlive the request that created it.
type Memo struct {
	recipes map[uint]Totals
	meals   map[uint]Totals
}

func NewMemo() *Memo {
	return &Memo{
		recipes: make(map[uint]Totals),
		meals:   make(map[uint]Totals),
	}
}

func (m *Memo) RecipeTotals(recipe *models.Recipe) Totals {
	if recipe == nil {
		return Totals{}
	}
	if recipe.ID != 0 {
		if totals, ok := m.recipes[recipe.ID]; ok {
			return totals
		}
	}
	totals := RecipeTotals(recipe)
	if recipe.ID != 0 {
		m.recipes[recipe.ID] = totals
	}
	return totals
}

func (m *Memo) MealTotals(meal *models.Meal) Totals {
	if meal == nil {
		return Totals{}
	}
	if meal.ID != 0 {
		if totals, ok := m.meals[meal.ID]; ok {
			return totals
		}
	}
	var totals Totals
	for i := range meal.Ingredients {
		ing := &meal.Ingredients[i]
		totals.Add(IngredientTotals(&ing.FoodItem, ing.Quantity))
	}
	for _, recipe := range meal.Recipes {
		totals.Add(m.RecipeTotals(recipe))
	}
	if meal.ID != 0 {
		m.meals[meal.ID] = totals
	}
	return totals
}

// Round1 rounds to one decimal place for serialization.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
