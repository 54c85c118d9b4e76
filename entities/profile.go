package entities

import (
	"github.com/google/uuid"
)

// Profile is keyed by the owning user's id, so a principal can never hold two.
type Profile struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Weight         float64   `json:"weight"` // kg
	Height         float64   `json:"height"` // cm
	Goal           *string   `gorm:"size:20" json:"goal"`           // lean_bulk, mass_gain, strength
	ActivityLevel  *string   `gorm:"size:20" json:"activity_level"` // sedentary .. extra_active
	TargetCalories float64   `gorm:"default:0" json:"target_calories"`
	TargetProtein  float64   `gorm:"default:0" json:"target_protein"`
	TargetCarbs    float64   `gorm:"default:0" json:"target_carbs"`
	TargetFats     float64   `gorm:"default:0" json:"target_fats"`
	Tokens         int       `gorm:"default:0" json:"tokens"`

	Timestamp
}
