package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-admin/internal/transport/http/ez"
)

type emailForm struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required"`
}

func (h *Handlers) mountEmail(g ez.EZ) {
	ez.RegisterAction(g, ez.Action[emailForm, empty]{
		Method: http.MethodPost,
		Path:   "/email",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *emailForm) (empty, error) {
			return empty{}, h.Email.Send(c.Request.Context(), in.Subject, in.Message)
		},
	})
}
