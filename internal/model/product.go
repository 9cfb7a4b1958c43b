package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Reference      string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"reference" validate:"required"`
	Name           string          `gorm:"type:varchar(200);not null" json:"name" validate:"required"`
	Description    string          `gorm:"type:text" json:"description"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	StockQuantity  int             `gorm:"not null;default:0" json:"stock_quantity" validate:"gte=0"`
	AlertThreshold int             `gorm:"default:10" json:"alert_threshold"`

	CategoryID *uuid.UUID `gorm:"type:uuid" json:"category_id,omitempty"`
	Category   *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL;" json:"category,omitempty" validate:"-"`
	SupplierID *uuid.UUID `gorm:"type:uuid" json:"supplier_id,omitempty"`
	Supplier   *Supplier  `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL;" json:"supplier,omitempty" validate:"-"`

	// Relation
	Movements []StockMovement `gorm:"constraint:OnDelete:CASCADE;" json:"movements,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// InAlert reports whether the on-hand quantity has reached the alert threshold
func (p *Product) InAlert() bool {
	return p.StockQuantity <= p.AlertThreshold
}
