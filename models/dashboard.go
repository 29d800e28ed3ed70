package models

// CategoryCount is one slice of the dashboard's skills distribution: how many
// projects reference each skill category.
type CategoryCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}
