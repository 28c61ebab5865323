package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	ProductName string          `gorm:"type:varchar(255);not null" json:"product_name"`
	Price       decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`

	// Relasi, only used to declare the foreign key
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
