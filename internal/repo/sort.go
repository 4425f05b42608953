package repo

import (
	"strings"
	"unicode"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catalog-admin/internal/domain"
)

// sortable 对外字段名 -> 列名 白名单（防注入）
type sortable map[string]string

// newSortable 默认包含 createdAt/updatedAt，其余按 camelCase -> snake_case 推导
func newSortable(keys ...string) sortable {
	s := sortable{}
	for _, k := range append([]string{"createdAt", "updatedAt"}, keys...) {
		s[k] = toSnake(k)
	}
	return s
}

// alias 对外字段名与列名不一致时使用
func (s sortable) alias(key, column string) sortable {
	s[key] = column
	return s
}

// apply 空 Key 按 created_at 升序
func (s sortable) apply(q *gorm.DB, in domain.Sort) (*gorm.DB, error) {
	key := strings.TrimSpace(in.Key)
	if key == "" {
		key = "createdAt"
	}
	col, ok := s[key]
	if !ok {
		return nil, domain.ErrUnknownSortKey
	}
	return q.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: in.Desc}), nil
}

func toSnake(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
