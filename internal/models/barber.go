package models

// Position is the chair placement on the shop floor, in percent of the
// floor plan's width and height.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Barber struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`

	Specialties []string `json:"specialties"`
	Bio         string   `json:"bio"`

	Status   string   `json:"status"`
	Position Position `json:"position"`
}
