package models

// Product represents a catalog item. The catalog is seeded once at boot and
// read-only afterwards; Stock is advisory (checked on cart adds, never
// decremented by them).
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" gorm:"type:text"`
	Materials   string  `json:"materials" gorm:"type:varchar(200)"`
	Stock       int     `json:"stock" validate:"gte=0"`
}
