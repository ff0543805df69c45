package models

// Property is a purchasable cell of the static catalog. Id doubles as the
// board position of the cell. Fines holds the rent owed per ownership level,
// Fines[0] being the fine a fresh purchase caches.
type Property struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
	Price int    `json:"price"`
	Fines []int  `json:"fines"`
}

type PropertyState struct {
	PropertyId  int    `json:"property_id"`
	Level       int    `json:"level"`
	CurrentFine int    `json:"current_fine"`
	OwnerName   string `json:"owner_name"`
}

type ChanceCard struct {
	Description string `json:"description"`
	Money       int    `json:"money"`
	Step        int    `json:"step"`
}
