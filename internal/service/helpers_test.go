package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"catalog-admin/internal/core/apperr"
	"catalog-admin/internal/domain"
	"catalog-admin/internal/repo"
	"catalog-admin/internal/storage"
	"catalog-admin/internal/testkit"
)

// plainHasher 测试用，避免 bcrypt 拖慢用例
type plainHasher struct{}

func (plainHasher) Hash(pw string) (string, error)  { return "h:" + pw, nil }
func (plainHasher) Compare(pw, hashed string) bool { return hashed == "h:"+pw }

type stubIssuer struct{ last string }

func (s *stubIssuer) Issue(uid string, roles []string) (string, error) {
	s.last = uid + "|" + strings.Join(roles, ",")
	return "token-" + uid, nil
}

type stubUploader struct {
	url   string
	err   error
	calls int
}

func (s *stubUploader) Upload(ctx context.Context, obj storage.Object) (string, error) {
	s.calls++
	return s.url, s.err
}

type env struct {
	store *repo.Store
	db    *gorm.DB
	cats  *CategoryService
	brand *BrandService
	prods *ProductService
	users *UserService
	roles *RoleService
	up    *stubUploader
}

func newEnv(t *testing.T) *env {
	t.Helper()
	st, db := testkit.NewStore(t)
	up := &stubUploader{url: "http://img.local/uploads/products/x.png"}
	return &env{
		store: st,
		db:    db,
		cats:  NewCategoryService(st),
		brand: NewBrandService(st),
		prods: NewProductService(st, up),
		users: NewUserService(st, plainHasher{}),
		roles: NewRoleService(st),
		up:    up,
	}
}

func (e *env) category(t *testing.T, name string) *domain.Category {
	t.Helper()
	c, err := e.cats.Create(context.Background(), NamedInput{NameEn: name})
	require.NoError(t, err)
	return c
}

func (e *env) brandOf(t *testing.T, name string) *domain.Brand {
	t.Helper()
	b, err := e.brand.Create(context.Background(), NamedInput{NameEn: name})
	require.NoError(t, err)
	return b
}

func productInput(modelNo, categoryID, brandID string) ProductInput {
	return ProductInput{
		ModelNo:    modelNo,
		Price:      decimal.RequireFromString("99.90"),
		ProdDescEn: "desc",
		ProdNameEn: "name " + modelNo,
		CategoryID: categoryID,
		BrandID:    brandID,
	}
}

func (e *env) product(t *testing.T, modelNo, categoryID, brandID string) *domain.Product {
	t.Helper()
	p, err := e.prods.Create(context.Background(), productInput(modelNo, categoryID, brandID))
	require.NoError(t, err)
	return p
}

func requireKind(t *testing.T, err error, k apperr.Kind, msg string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, k, apperr.KindOf(err), "err = %v", err)
	if msg != "" {
		require.Equal(t, msg, apperr.Message(err))
	}
}
