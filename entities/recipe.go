package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	TimeMinutes int       `json:"time_minutes"`
	Price       float64   `gorm:"type:numeric(5,2)" json:"price"`
	Link        string    `json:"link"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`

	Tags        []*Tag        `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []*Ingredient `gorm:"many2many:recipe_ingredients" json:"ingredients"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
