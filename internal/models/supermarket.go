// internal/models/supermarket.go
package models

// Supermarket is a branch of the chain. Rows are created by the bulk loader
// and never mutated afterwards; the id doubles as the business identifier
// (SMKT###).
type Supermarket struct {
	ID string `json:"id" gorm:"primaryKey;size:7"`
}

func (Supermarket) TableName() string {
	return "supermarkets"
}
