package domain

// Meal is one meal of a meal plan. Meals are created as separate upstream
// mutations after the plan itself.
type Meal struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Carbs    int    `json:"carbs"`
	Fats     int    `json:"fats"`
	Protein  int    `json:"protein"`
}

// MealPlan is the flat view model for a meal plan.
type MealPlan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ClientID    string `json:"clientId"`
	TrainerID   string `json:"trainerId"`
	Meals       []Meal `json:"meals"`
}
