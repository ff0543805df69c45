package models

type PlayerRole string

const (
	RoleAdmin PlayerRole = "ADMIN"
	RoleUser  PlayerRole = "USER"
)

type Player struct {
	Name     string     `json:"name"`
	Balance  int        `json:"balance"`
	Position int        `json:"position"`
	Colour   string     `json:"colour"`
	Role     PlayerRole `json:"role"`
}
