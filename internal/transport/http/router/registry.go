package router

import (
	"sort"

	"catalog-admin/internal/transport/http/ez"
)

// Module 一组接口；public 无需登录，protected 已挂鉴权
type Module interface {
	Mount(public, protected ez.EZ)
}

// 可选：实现该接口可控制挂载顺序（数值越小越先挂）
// 不实现则默认 100
type prioritizer interface{ Priority() int }

// Registry 按优先级挂载模块；每个 engine 一份，不用全局变量
type Registry struct {
	mods []Module
}

func (r *Registry) Register(mods ...Module) {
	for _, m := range mods {
		if m != nil {
			r.mods = append(r.mods, m)
		}
	}
}

func (r *Registry) Len() int { return len(r.mods) }

func (r *Registry) MountAll(public, protected ez.EZ) {
	mods := append([]Module(nil), r.mods...)
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.Mount(public, protected)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
