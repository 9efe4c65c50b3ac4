package models

// StateCity is a lookup row pairing a state with one of its cities.
type StateCity struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	State string `gorm:"not null;index" json:"state"`
	City  string `gorm:"not null" json:"city"`
}

func (StateCity) TableName() string { return "state_and_city" }
