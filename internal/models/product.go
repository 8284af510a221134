package models

import "time"

// Product is a single catalog item. The category reference is weak: a
// product may carry an empty CategoryID, and deleting a product never
// touches the category it points at.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(100)"`
	Description string    `json:"description" gorm:"type:varchar(500)"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImagePath   string    `json:"image_path"`
	CategoryID  string    `json:"category_id" gorm:"type:varchar(36)"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// URL returns the canonical path for this product.
func (p *Product) URL() string {
	return "/catalog/product/" + p.ID
}
