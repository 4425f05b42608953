package domain

// User 后台用户；UserID 在有效用户中大小写不敏感唯一
type User struct {
	Base
	UserID       string `gorm:"size:64;not null;index" json:"userId"`
	PasswordHash string `gorm:"size:100" json:"-"`
	Roles        []Role `gorm:"many2many:user_roles;" json:"roles,omitempty"`
}

func (User) TableName() string { return "users" }
