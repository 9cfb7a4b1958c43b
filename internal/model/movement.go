package model

import "github.com/google/uuid"

type MovementKind string

const (
	MovementIn  MovementKind = "IN"
	MovementOut MovementKind = "OUT"
)

// StockMovement is an immutable ledger entry; the product's on-hand quantity
// is the running total of its IN minus OUT quantities.
type StockMovement struct {
	BaseModel
	ProductID uuid.UUID    `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product   *Product     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;" json:"product,omitempty" validate:"-"`
	Kind      MovementKind `gorm:"type:varchar(10);not null" json:"kind" validate:"required,oneof=IN OUT"`
	Quantity  int          `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Reason    string       `gorm:"type:text" json:"reason"`
}

func (StockMovement) TableName() string {
	return "stock_movements"
}
