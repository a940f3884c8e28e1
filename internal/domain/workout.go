package domain

import (
	"encoding/json"
	"fmt"
)

// Exercise is one entry of a workout's exercise list.
type Exercise struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets,omitempty"`
	Reps   string `json:"reps,omitempty"`
	Weight string `json:"weight,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// ExerciseList decodes the upstream "exercises" field, which is inconsistently
// typed: sometimes a live JSON array, sometimes a pre-serialized JSON string
// containing that array. Both forms decode to the same slice.
type ExerciseList []Exercise

func (l *ExerciseList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			*l = nil
			return nil
		}
		var items []Exercise
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return fmt.Errorf("exercises string is not a JSON array: %w", err)
		}
		*l = items
		return nil
	}
	var items []Exercise
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

// Serialized returns the list as the JSON string form the upstream mutations
// expect for the exercises argument.
func (l ExerciseList) Serialized() (string, error) {
	if l == nil {
		l = ExerciseList{}
	}
	b, err := json.Marshal([]Exercise(l))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Workout is the flat view model for a workout.
type Workout struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Exercises ExerciseList `json:"exercises"`
	Completed bool         `json:"completed"`
	ClientID  string       `json:"clientId"`
	TrainerID string       `json:"trainerId"`
	DueDate   string       `json:"dueDate,omitempty"`
}
