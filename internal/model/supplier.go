package model

// Supplier is the source a product is purchased from
type Supplier struct {
	BaseModel
	Name    string  `gorm:"type:varchar(150);not null" json:"name" validate:"required"`
	Email   *string `gorm:"type:varchar(100);uniqueIndex" json:"email,omitempty" validate:"omitempty,email"`
	Phone   string  `gorm:"type:varchar(20)" json:"phone"`
	Address string  `gorm:"type:text" json:"address"`

	Products []Product `gorm:"constraint:OnDelete:SET NULL;" json:"products,omitempty"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
