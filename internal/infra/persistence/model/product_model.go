package model

import "time"

// ProductModel mirrors the 'products' table. Name uniqueness lives in the
// store; OwnerID is nullable because product creation does not require an
// authenticated caller.
type ProductModel struct {
	ID          string `gorm:"type:varchar(64);primary_key"`
	Name        string `gorm:"type:varchar(255);unique;not null"`
	Description string `gorm:"type:text"`
	OwnerID     string `gorm:"type:varchar(64);index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
