package model

type Category struct {
	BaseModel
	CategoryName string `gorm:"type:varchar(255);not null" json:"category_name"`
}

func (Category) TableName() string {
	return "categories"
}
