package upstream

import "fitstudio/admin-api/internal/domain"

// Edge wraps one node of a graph-shaped list response.
type Edge[T any] struct {
	Node T `json:"node"`
}

// Connection is the edges wrapper every upstream list field uses.
type Connection[T any] struct {
	Edges []Edge[T] `json:"edges"`
}

// Count returns the number of edges, treating an absent connection as empty.
// Counts in the view models are derived this way, never stored.
func (c *Connection[T]) Count() int {
	if c == nil {
		return 0
	}
	return len(c.Edges)
}

// Nodes flattens the edges into a plain slice.
func (c *Connection[T]) Nodes() []T {
	if c == nil {
		return nil
	}
	nodes := make([]T, len(c.Edges))
	for i, e := range c.Edges {
		nodes[i] = e.Node
	}
	return nodes
}

// --- Node shapes, mirroring the upstream schema ---

// UserNode carries the identity record. Password only appears on the login
// lookup; every other query leaves it out.
type UserNode struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
}

// TrainerRef is the shallow trainer object nested inside a client node.
type TrainerRef struct {
	ID   string    `json:"id"`
	User *UserNode `json:"user"`
}

// ClientRef is the shallow client object nested inside workout/meal-plan nodes.
type ClientRef struct {
	ID string `json:"id"`
}

// WeightTrendNode is only ever counted, never reshaped.
type WeightTrendNode struct {
	ID string `json:"id"`
}

// ClientNode is the graph shape of a client role record.
type ClientNode struct {
	ID           string                       `json:"id"`
	User         *UserNode                    `json:"user"`
	Trainer      *TrainerRef                  `json:"trainer"`
	Workouts     *Connection[WorkoutNode]     `json:"workouts"`
	MealPlans    *Connection[MealPlanNode]    `json:"mealPlans"`
	WeightTrends *Connection[WeightTrendNode] `json:"weightTrends"`
}

// TrainerNode is the graph shape of a trainer role record.
type TrainerNode struct {
	ID      string                  `json:"id"`
	User    *UserNode               `json:"user"`
	Clients *Connection[ClientNode] `json:"clients"`
}

// WorkoutNode is the graph shape of a workout. Exercises decodes tolerantly
// from either a JSON array or a pre-serialized string.
type WorkoutNode struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Exercises domain.ExerciseList `json:"exercises"`
	Completed bool                `json:"completed"`
	Client    *ClientRef          `json:"client"`
	Trainer   *TrainerRef         `json:"trainer"`
	DueDate   string              `json:"dueDate"`
}

// MealNode is the graph shape of one meal.
type MealNode struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Carbs    int    `json:"carbs"`
	Fats     int    `json:"fats"`
	Protein  int    `json:"protein"`
}

// MealPlanNode is the graph shape of a meal plan.
type MealPlanNode struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Client      *ClientRef            `json:"client"`
	Trainer     *TrainerRef           `json:"trainer"`
	Meals       *Connection[MealNode] `json:"meals"`
}

// --- Response envelopes, one per operation data shape ---

type UsersListData struct {
	UsersList Connection[UserNode] `json:"usersList"`
}

type ClientsListData struct {
	ClientsList Connection[ClientNode] `json:"clientsList"`
}

type ClientData struct {
	Client *ClientNode `json:"client"`
}

type TrainersListData struct {
	TrainersList Connection[TrainerNode] `json:"trainersList"`
}

type TrainerData struct {
	Trainer *TrainerNode `json:"trainer"`
}

type WorkoutsListData struct {
	WorkoutsList Connection[WorkoutNode] `json:"workoutsList"`
}

type WorkoutData struct {
	Workout *WorkoutNode `json:"workout"`
}

type MealPlansListData struct {
	MealPlansList Connection[MealPlanNode] `json:"mealPlansList"`
}

type MealPlanData struct {
	MealPlan *MealPlanNode `json:"mealPlan"`
}

// --- Mutation payloads ---

type UserMutationPayload struct {
	MutationStatus
	User *UserNode `json:"user"`
}

type ClientMutationPayload struct {
	MutationStatus
	Client *ClientNode `json:"client"`
}

type TrainerMutationPayload struct {
	MutationStatus
	Trainer *TrainerNode `json:"trainer"`
}

type WorkoutMutationPayload struct {
	MutationStatus
	Workout *WorkoutNode `json:"workout"`
}

type MealPlanMutationPayload struct {
	MutationStatus
	MealPlan *MealPlanNode `json:"mealPlan"`
}

type MealMutationPayload struct {
	MutationStatus
	Meal *MealNode `json:"meal"`
}

type DeleteMutationPayload struct {
	MutationStatus
}

type CreateUserData struct {
	UserCreate UserMutationPayload `json:"userCreate"`
}

type UpdateUserData struct {
	UserUpdate UserMutationPayload `json:"userUpdate"`
}

type DeleteUserData struct {
	UserDelete DeleteMutationPayload `json:"userDelete"`
}

type CreateClientData struct {
	ClientCreate ClientMutationPayload `json:"clientCreate"`
}

type UpdateClientData struct {
	ClientUpdate ClientMutationPayload `json:"clientUpdate"`
}

type DeleteClientData struct {
	ClientDelete DeleteMutationPayload `json:"clientDelete"`
}

type UpdateTrainerData struct {
	TrainerUpdate TrainerMutationPayload `json:"trainerUpdate"`
}

type DeleteTrainerData struct {
	TrainerDelete DeleteMutationPayload `json:"trainerDelete"`
}

type CreateWorkoutData struct {
	WorkoutCreate WorkoutMutationPayload `json:"workoutCreate"`
}

type UpdateWorkoutData struct {
	WorkoutUpdate WorkoutMutationPayload `json:"workoutUpdate"`
}

type DeleteWorkoutData struct {
	WorkoutDelete DeleteMutationPayload `json:"workoutDelete"`
}

type CreateMealPlanData struct {
	MealPlanCreate MealPlanMutationPayload `json:"mealPlanCreate"`
}

type UpdateMealPlanData struct {
	MealPlanUpdate MealPlanMutationPayload `json:"mealPlanUpdate"`
}

type DeleteMealPlanData struct {
	MealPlanDelete DeleteMutationPayload `json:"mealPlanDelete"`
}

type CreateMealData struct {
	MealCreate MealMutationPayload `json:"mealCreate"`
}
