// internal/models/product.go
package models

// Product is a catalog entry. Name is the business key; price is the unit
// price applied at purchase time. First write wins on bulk load conflicts;
// the running system never updates or deletes products.
type Product struct {
	ID    uint    `json:"-" gorm:"primaryKey"`
	Name  string  `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Price float64 `json:"price" gorm:"type:decimal(10,2);not null"`
}

func (Product) TableName() string {
	return "products"
}
