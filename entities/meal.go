package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Meal struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Date        datatypes.Date `gorm:"index;not null" json:"date"`
	Calories    float64        `json:"calories"`
	Protein     float64        `json:"protein"`
	Carbs       float64        `json:"carbs"`
	Fats        float64        `json:"fats"`
	Analysis    string         `gorm:"type:text" json:"analysis,omitempty"`
	ImageURL    string         `json:"image_url,omitempty"`
	Active      bool           `gorm:"default:true;not null;index" json:"active"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
