package model

// Category groups products for display and filtering
type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`

	Products []Product `gorm:"constraint:OnDelete:SET NULL;" json:"products,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
