package domain

// UnassignedTrainerName is the trainer name shown for clients with no
// trainer linked upstream.
const UnassignedTrainerName = "Unassigned"

// Client is the flat view model for a client role record. Counts are derived
// by counting connection edges in the upstream response; they are not stored
// anywhere.
type Client struct {
	ID               string  `json:"id"`
	UserID           string  `json:"userId"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	TrainerID        *string `json:"trainerId"`
	TrainerName      string  `json:"trainerName"`
	WorkoutCount     int     `json:"workoutCount"`
	MealPlanCount    int     `json:"mealPlanCount"`
	WeightTrendCount int     `json:"weightTrendCount"`
}
