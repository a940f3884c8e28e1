package domain

// RoleKind discriminates the three shapes the role resolver can produce.
// The tag is explicit so callers branch on a declared field instead of
// probing for presence/absence of other fields.
type RoleKind string

const (
	RoleAdmin   RoleKind = "admin"
	RoleClient  RoleKind = "client"
	RoleTrainer RoleKind = "trainer"
)

// Profile is the role-resolution payload for a user identity.
//
// Admin: static payload, Clients is empty.
// Client: own profile, assigned trainer (if any), own counts, Clients empty
// (a client manages no one).
// Trainer: own profile plus the full roster of assigned clients.
type Profile struct {
	Kind             RoleKind `json:"kind"`
	ID               string   `json:"id"`
	UserID           string   `json:"userId"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	TrainerID        *string  `json:"trainerId,omitempty"`
	TrainerName      string   `json:"trainerName,omitempty"`
	WorkoutCount     int      `json:"workoutCount"`
	MealPlanCount    int      `json:"mealPlanCount"`
	WeightTrendCount int      `json:"weightTrendCount"`
	ClientCount      int      `json:"clientCount"`
	Clients          []Client `json:"clients"`
}
