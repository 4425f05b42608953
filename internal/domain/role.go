package domain

// Role 角色；Endpoints 为允许访问的接口标识
type Role struct {
	Base
	RoleID    int      `gorm:"not null" json:"roleId"`
	Name      string   `gorm:"size:64;not null;index" json:"roleName"`
	Endpoints []string `gorm:"serializer:json" json:"endPoints"`
}

func (Role) TableName() string { return "roles" }

// RoleNames 提取角色名
func RoleNames(roles []Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, r.Name)
	}
	return out
}
