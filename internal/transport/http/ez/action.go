// Package ez 一行注册一个接口：绑定入参 -> 调用服务 -> 统一响应
package ez

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"catalog-admin/internal/core/apperr"
	mdw "catalog-admin/internal/transport/http/middleware"
	resp "catalog-admin/internal/transport/http/response"
)

type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ {
	if l == nil {
		l = zap.NewNop()
	}
	return EZ{g: g, log: l}
}

// Group 子分组共用同一个 logger
func (e EZ) Group(path string, mw ...gin.HandlerFunc) EZ {
	return EZ{g: e.g.Group(path, mw...), log: e.log}
}

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindForm  Binder = "form"  // multipart / urlencoded
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

// Action I 入参，O 出参
type Action[I any, O any] struct {
	Method string // "GET" | "POST" | "PUT" | "DELETE"
	Path   string
	Binder Binder
	// 成功时的 HTTP 状态，默认 200
	Status  int
	Handler func(c *gin.Context, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		case BindForm:
			// 固定按表单解析，JSON 请求体不会被接受
			bindErr = c.ShouldBindWith(&in, binding.Form)
		default:
		}
		if bindErr != nil {
			Fail(c, e.log, apperr.Validation(BindMessage(bindErr)))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			Fail(c, e.log, err)
			return
		}
		status := a.Status
		if status == 0 {
			status = http.StatusOK
		}
		c.JSON(status, resp.OK(out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default: // 默认 POST
		e.g.POST(a.Path, h)
	}
}

// Fail 统一错误映射；Internal 只记日志，对外固定文案
func Fail(c *gin.Context, l *zap.Logger, err error) {
	err = apperr.From(err)
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		mdw.LoggerFrom(c, l).Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(errors.Unwrap(err)),
		)
	}
	code := kind.Code()
	c.AbortWithStatusJSON(resp.HTTPStatus(code), resp.Error(code, apperr.Message(err)))
}

// BindMessage 只报第一个不合法字段
func BindMessage(err error) string {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "max":
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		case "decimal":
			return fmt.Sprintf("%s must be a non-negative number", fe.Field())
		case "eqfield":
			if fe.Param() == "Password" {
				return "Password does not match"
			}
			return fmt.Sprintf("%s must match %s", fe.Field(), fe.Param())
		case "ltefield":
			return fmt.Sprintf("%s must not exceed %s", fe.Field(), fe.Param())
		default:
			return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
		}
	}
	return resp.CodeMsgMap[resp.CodeBadRequest]
}
