package service

import (
	"fitstudio/admin-api/internal/domain"
	"fitstudio/admin-api/internal/upstream"
)

// Normalizers: each maps a graph-shaped upstream node into the flat view
// model the dashboard consumes. Absent connections count as zero; a missing
// trainer link shows as "Unassigned".

func mapUserNode(n upstream.UserNode) domain.User {
	return domain.User{
		ID:        n.ID,
		FirstName: n.FirstName,
		LastName:  n.LastName,
		Email:     n.Email,
	}
}

func mapClientNode(n upstream.ClientNode) domain.Client {
	client := domain.Client{
		ID:               n.ID,
		TrainerName:      domain.UnassignedTrainerName,
		WorkoutCount:     n.Workouts.Count(),
		MealPlanCount:    n.MealPlans.Count(),
		WeightTrendCount: n.WeightTrends.Count(),
	}
	if n.User != nil {
		client.UserID = n.User.ID
		client.Name = mapUserNode(*n.User).FullName()
		client.Email = n.User.Email
	}
	if n.Trainer != nil && n.Trainer.ID != "" {
		id := n.Trainer.ID
		client.TrainerID = &id
		if n.Trainer.User != nil {
			client.TrainerName = mapUserNode(*n.Trainer.User).FullName()
		}
	}
	return client
}

func mapClientNodes(nodes []upstream.ClientNode) []domain.Client {
	clients := make([]domain.Client, len(nodes))
	for i, n := range nodes {
		clients[i] = mapClientNode(n)
	}
	return clients
}

// mapTrainerNode reshapes a trainer node. Phone, specialization and rating
// are not selected by any query; they stay zero-valued in the view model.
func mapTrainerNode(n upstream.TrainerNode) domain.Trainer {
	trainer := domain.Trainer{
		ID:          n.ID,
		ClientCount: n.Clients.Count(),
		Clients:     mapClientNodes(n.Clients.Nodes()),
	}
	if trainer.Clients == nil {
		trainer.Clients = []domain.Client{}
	}
	if n.User != nil {
		trainer.UserID = n.User.ID
		trainer.Name = mapUserNode(*n.User).FullName()
		trainer.Email = n.User.Email
	}
	return trainer
}

func mapTrainerNodes(nodes []upstream.TrainerNode) []domain.Trainer {
	trainers := make([]domain.Trainer, len(nodes))
	for i, n := range nodes {
		trainers[i] = mapTrainerNode(n)
	}
	return trainers
}

func mapWorkoutNode(n upstream.WorkoutNode) domain.Workout {
	workout := domain.Workout{
		ID:        n.ID,
		Name:      n.Name,
		Exercises: n.Exercises,
		Completed: n.Completed,
		DueDate:   n.DueDate,
	}
	if workout.Exercises == nil {
		workout.Exercises = domain.ExerciseList{}
	}
	if n.Client != nil {
		workout.ClientID = n.Client.ID
	}
	if n.Trainer != nil {
		workout.TrainerID = n.Trainer.ID
	}
	return workout
}

func mapWorkoutNodes(nodes []upstream.WorkoutNode) []domain.Workout {
	workouts := make([]domain.Workout, len(nodes))
	for i, n := range nodes {
		workouts[i] = mapWorkoutNode(n)
	}
	return workouts
}

func mapMealNode(n upstream.MealNode) domain.Meal {
	return domain.Meal{
		Name:     n.Name,
		Calories: n.Calories,
		Carbs:    n.Carbs,
		Fats:     n.Fats,
		Protein:  n.Protein,
	}
}

func mapMealPlanNode(n upstream.MealPlanNode) domain.MealPlan {
	plan := domain.MealPlan{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		Meals:       []domain.Meal{},
	}
	if n.Client != nil {
		plan.ClientID = n.Client.ID
	}
	if n.Trainer != nil {
		plan.TrainerID = n.Trainer.ID
	}
	for _, meal := range n.Meals.Nodes() {
		plan.Meals = append(plan.Meals, mapMealNode(meal))
	}
	return plan
}

func mapMealPlanNodes(nodes []upstream.MealPlanNode) []domain.MealPlan {
	plans := make([]domain.MealPlan, len(nodes))
	for i, n := range nodes {
		plans[i] = mapMealPlanNode(n)
	}
	return plans
}
