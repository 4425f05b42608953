package service

import (
	"context"
	"strings"

	"catalog-admin/internal/core/apperr"
	"catalog-admin/internal/domain"
	"catalog-admin/pkg/utils"
)

type namedPtr[T any] interface {
	*T
	domain.Named
}

// NamedInput 分类 / 品牌的可写字段
type NamedInput struct {
	NameEn string
	NameZh string
}

// Taxonomy 分类与品牌共用的增删改查
type Taxonomy[T any, P namedPtr[T]] struct {
	store domain.Store
	repo  func(domain.Store) domain.NamedRepository[T]
	label string
}

type (
	CategoryService = Taxonomy[domain.Category, *domain.Category]
	BrandService    = Taxonomy[domain.Brand, *domain.Brand]
)

func NewCategoryService(st domain.Store) *CategoryService {
	return &CategoryService{
		store: st,
		repo:  func(s domain.Store) domain.NamedRepository[domain.Category] { return s.Categories() },
		label: "Category",
	}
}

func NewBrandService(st domain.Store) *BrandService {
	return &BrandService{
		store: st,
		repo:  func(s domain.Store) domain.NamedRepository[domain.Brand] { return s.Brands() },
		label: "Brand",
	}
}

func (s *Taxonomy[T, P]) noneFound() string { return notFoundMsg(strings.ToLower(s.label)) }

func (s *Taxonomy[T, P]) Create(ctx context.Context, in NamedInput) (*T, error) {
	in.NameEn, in.NameZh = trim(in.NameEn), trim(in.NameZh)
	if in.NameEn == "" {
		return nil, apperr.Validation(s.label + " name is not provided")
	}

	var out *T
	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		r := s.repo(tx)
		dup, err := r.FindActiveByName(ctx, in.NameEn, "")
		if err != nil {
			return err
		}
		if dup != nil {
			return apperr.Conflict(s.label + " already exists")
		}
		m := new(T)
		P(m).Activate(utils.NewID())
		P(m).SetNames(in.NameEn, in.NameZh)
		if err := r.Create(ctx, m); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, apperr.From(err)
	}
	return out, nil
}

// Update 覆盖名称；改名同样受有效记录唯一约束
func (s *Taxonomy[T, P]) Update(ctx context.Context, id string, in NamedInput) error {
	in.NameEn, in.NameZh = trim(in.NameEn), trim(in.NameZh)
	if in.NameEn == "" {
		return apperr.Validation(s.label + " name is not provided")
	}

	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		r := s.repo(tx)
		m, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if m == nil || !P(m).IsActive() {
			return apperr.NotFound(s.label + " does not exist")
		}
		dup, err := r.FindActiveByName(ctx, in.NameEn, id)
		if err != nil {
			return err
		}
		if dup != nil {
			return apperr.Conflict(s.label + " already exists")
		}
		P(m).SetNames(in.NameEn, in.NameZh)
		return r.Save(ctx, m)
	})
	return apperr.From(err)
}

func (s *Taxonomy[T, P]) Get(ctx context.Context, id string) (*T, error) {
	m, err := s.repo(s.store).FindByID(ctx, id)
	if err != nil {
		return nil, apperr.From(err)
	}
	if m == nil || !P(m).IsActive() {
		return nil, apperr.NotFound(s.noneFound())
	}
	return m, nil
}

// List 只返回有效记录；一条都没有视为 NotFound
func (s *Taxonomy[T, P]) List(ctx context.Context, sort domain.Sort) ([]T, error) {
	ms, err := s.repo(s.store).List(ctx, sort)
	if err != nil {
		return nil, listErr(err)
	}
	if len(ms) == 0 {
		return nil, apperr.NotFound(s.noneFound())
	}
	return ms, nil
}

// Delete 软删；不存在与已删除返回同一个错误
func (s *Taxonomy[T, P]) Delete(ctx context.Context, id string) error {
	err := s.store.WithTx(ctx, func(tx domain.Store) error {
		r := s.repo(tx)
		m, err := r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if m == nil || !P(m).IsActive() {
			return apperr.NotFound(s.noneFound())
		}
		P(m).MarkDeleted()
		return r.Save(ctx, m)
	})
	return apperr.From(err)
}
