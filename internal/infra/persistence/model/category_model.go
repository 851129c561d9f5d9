package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. PlacesCount is not a column;
// list queries fill it with a correlated subquery.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_categories_user_name,unique"`
	Name      string    `gorm:"type:varchar(100);not null;index:idx_categories_user_name,unique"`
	CreatedAt time.Time
	UpdatedAt time.Time

	PlacesCount int64 `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
