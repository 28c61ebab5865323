package model

// User is a shop customer. Email is nullable: NULL and "" are different stored values.
type User struct {
	BaseModel
	Username string  `gorm:"type:varchar(255);not null" json:"username"`
	Email    *string `gorm:"type:varchar(255)" json:"email"`
}

func (User) TableName() string {
	return "users"
}
