package entities

import (
	"github.com/google/uuid"
)

type Collection struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	IsPublic    bool      `gorm:"default:false" json:"is_public"`

	Owner *User            `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"owner,omitempty"`
	Items []CollectionItem `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	Timestamp
}

type CollectionItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CollectionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collection_recipe" json:"collection_id"`
	RecipeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collection_recipe" json:"recipe_id"`
	Note         string    `gorm:"type:varchar(255)" json:"note,omitempty"`
	Position     int       `gorm:"default:0" json:"position"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe,omitempty"`
}
