package domain

// Trainer is the flat view model for a trainer role record.
//
// Phone, Specialization and Rating exist for the dashboard but the upstream
// schema never populates them; they stay zero-valued on every response.
type Trainer struct {
	ID             string   `json:"id"`
	UserID         string   `json:"userId"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Specialization string   `json:"specialization"`
	Rating         float64  `json:"rating"`
	ClientCount    int      `json:"clientCount"`
	Clients        []Client `json:"clients"`
}
