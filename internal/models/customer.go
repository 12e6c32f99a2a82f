// internal/models/customer.go
package models

// Customer maps a stable external identifier (real_id) to an internally
// generated opaque identifier (uuid). The mapping is created exactly once
// per distinct real_id and never changes; both unique indexes back the
// insert-if-absent paths (live registration conflicts on real_id, bulk
// load conflicts on uuid).
type Customer struct {
	ID     uint   `json:"-" gorm:"primaryKey"`
	RealID string `json:"real_id" gorm:"column:real_id;size:20;uniqueIndex;not null"`
	UUID   string `json:"uuid" gorm:"column:uuid;size:36;uniqueIndex;not null"`
}

func (Customer) TableName() string {
	return "customers"
}
