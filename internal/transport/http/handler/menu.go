package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-admin/internal/domain"
	"catalog-admin/internal/transport/http/ez"
)

func (h *Handlers) mountMenu(g ez.EZ) {
	ez.RegisterAction(g, ez.Action[empty, []domain.MenuEntry]{
		Method: http.MethodGet,
		Path:   "/menu",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *empty) ([]domain.MenuEntry, error) {
			return h.Menu.Compute(c.Request.Context())
		},
	})
}
