package handler

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var setupOnce sync.Once

// SetupValidator 在 gin 默认校验器上注册自定义规则，只执行一次
func SetupValidator() {
	setupOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterRules(v)
		}
	})
}

// RegisterRules 错误信息里用对外字段名；decimal 校验非负数字；商品表单折扣价不得高于原价
func RegisterRules(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && !d.IsNegative()
	})
	v.RegisterStructValidation(productFormRule, ProductForm{})
}

func productFormRule(sl validator.StructLevel) {
	f := sl.Current().Interface().(ProductForm)
	if strings.TrimSpace(f.DiscountPrice) == "" {
		return
	}
	price, err1 := decimal.NewFromString(strings.TrimSpace(f.Price))
	discount, err2 := decimal.NewFromString(strings.TrimSpace(f.DiscountPrice))
	if err1 != nil || err2 != nil {
		// 格式错误由 decimal 规则报告
		return
	}
	if discount.GreaterThan(price) {
		sl.ReportError(f.DiscountPrice, "discountPrice", "DiscountPrice", "ltefield", "price")
	}
}
