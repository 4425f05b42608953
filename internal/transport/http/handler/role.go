package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-admin/internal/domain"
	"catalog-admin/internal/transport/http/ez"
)

func (h *Handlers) mountRoles(g ez.EZ) {
	ez.RegisterAction(g, ez.Action[empty, []domain.Role]{
		Method: http.MethodGet,
		Path:   "/roles",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) ([]domain.Role, error) {
			return h.Roles.List(c.Request.Context())
		},
	})
}
