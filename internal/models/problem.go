package models

// Problem statuses. The status column holds exactly one of these.
const (
	StatusUnsolved = "Unsolved"
	StatusSolved   = "Solved"
)

// Problem is a single tracked practice item, owned by exactly one user.
type Problem struct {
	ID       int    `json:"id"`
	Username string `json:"-"` // owner, taken from the session, never rendered
	Topic    string `json:"topic"`
	Problem  string `json:"problem"`
	Status   string `json:"status"` // Unsolved | Solved
}

// IsSolved reports whether the problem is marked solved.
func (p Problem) IsSolved() bool { return p.Status == StatusSolved }

// Progress is derived from a user's problems on every read; never persisted.
type Progress struct {
	Total   int `json:"total"`
	Solved  int `json:"solved"`
	Percent int `json:"percent"` // floor(100*solved/total), 0 when Total is 0
}
