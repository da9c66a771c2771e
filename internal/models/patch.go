package models

// RecipePatch carries a partial recipe update. Nil fields are left
// untouched. Ingredients and Steps, when present, replace the whole child
// sequence; there is no per-row patching of children.
type RecipePatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	Category    *Category
	Cuisine     *string
	Difficulty  *Difficulty
	PrepTime    *int
	CookTime    *int
	Servings    *int
	Nutrition   *NutritionInfo
	Tags        *[]string
	SourceURL   *string
	Ingredients *[]Ingredient
	Steps       *[]Step
}
