package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Status 软删状态：A = 有效，D = 已删除（终态）
type Status string

const (
	StatusActive  Status = "A"
	StatusDeleted Status = "D"
)

func (s Status) Value() (driver.Value, error) { return string(s), nil }

func (s *Status) Scan(v any) error {
	switch t := v.(type) {
	case string:
		*s = Status(t)
	case []byte:
		*s = Status(t)
	case nil:
		*s = ""
	default:
		return fmt.Errorf("status: unsupported type %T", v)
	}
	return nil
}

// Base 所有实体共有字段；记录永不物理删除
type Base struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Status    Status    `gorm:"size:1;not null;index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) GetID() string  { return b.ID }
func (b *Base) IsActive() bool { return b.Status == StatusActive }

// Activate 新建记录时调用
func (b *Base) Activate(id string) {
	b.ID = id
	b.Status = StatusActive
}

// MarkDeleted Active -> Deleted，不可逆
func (b *Base) MarkDeleted() { b.Status = StatusDeleted }

// Record 软删实体的公共行为
type Record interface {
	GetID() string
	IsActive() bool
	Activate(id string)
	MarkDeleted()
}

// Sort 列表排序；Key 为对外字段名（如 createdAt），空则按创建时间
type Sort struct {
	Key  string
	Desc bool
}
