// internal/models/purchase.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// Purchase is one recorded transaction. Rows are immutable: there is no
// update or delete path. ItemList keeps the submitted order and may contain
// duplicate names when the row came from a historical bulk load.
type Purchase struct {
	ID            uint           `json:"-" gorm:"primaryKey"`
	SupermarketID string         `json:"supermarket_id" gorm:"size:7;not null;index"`
	Timestamp     time.Time      `json:"timestamp" gorm:"not null;index"`
	UserID        string         `json:"user_id" gorm:"column:user_id;size:36;not null;index"`
	ItemList      pq.StringArray `json:"item_list" gorm:"column:item_list;type:text[];not null"`
	TotalAmount   float64        `json:"total_amount" gorm:"type:decimal(10,2);not null"`

	Supermarket Supermarket `json:"-" gorm:"foreignKey:SupermarketID"`
}

func (Purchase) TableName() string {
	return "purchases"
}
