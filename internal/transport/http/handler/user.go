package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-admin/internal/domain"
	"catalog-admin/internal/service"
	"catalog-admin/internal/transport/http/ez"
)

// ReEntryPassword 缺失或不一致都报 "Password does not match"
type createUserForm struct {
	UserID          string   `json:"userId" binding:"required,max=64"`
	Password        string   `json:"password" binding:"required,min=6,max=72"`
	ReEntryPassword string   `json:"reEntryPassword" binding:"eqfield=Password"`
	RoleNames       []string `json:"roleNames"`
}

type updateUserForm struct {
	Password        string `json:"password" binding:"required,min=6,max=72"`
	ReEntryPassword string `json:"reEntryPassword" binding:"eqfield=Password"`
}

func (h *Handlers) mountUsers(g ez.EZ) {
	ez.RegisterAction(g, ez.Action[createUserForm, *domain.User]{
		Method: http.MethodPost,
		Path:   "/users",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *createUserForm) (*domain.User, error) {
			return h.Users.Create(c.Request.Context(), service.UserInput{
				UserID: in.UserID, Password: in.Password, RoleNames: in.RoleNames,
			})
		},
	})

	ez.RegisterAction(g, ez.Action[listQuery, []domain.User]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, q *listQuery) ([]domain.User, error) {
			return h.Users.List(c.Request.Context(), q.sort())
		},
	})

	ez.RegisterAction(g, ez.Action[empty, *domain.User]{
		Method: http.MethodGet,
		Path:   "/users/:userId",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (*domain.User, error) {
			return h.Users.Get(c.Request.Context(), c.Param("userId"))
		},
	})

	// 只能改密码
	ez.RegisterAction(g, ez.Action[updateUserForm, empty]{
		Method: http.MethodPut,
		Path:   "/users/:userId",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *updateUserForm) (empty, error) {
			return empty{}, h.Users.Update(c.Request.Context(), c.Param("userId"), in.Password)
		},
	})

	ez.RegisterAction(g, ez.Action[empty, empty]{
		Method: http.MethodDelete,
		Path:   "/users/:userId",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) (empty, error) {
			return empty{}, h.Users.Delete(c.Request.Context(), c.Param("userId"))
		},
	})
}
