package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"blog-platform-server/internal/consts"

	"github.com/go-playground/validator/v10"
)

func init() {
	if err := RegisterCustomValidations(validate); err != nil {
		panic(err)
	}
}

// RegisterCustomValidations 注册业务自定义校验标签，并使用 json 字段名作为报错字段。
// 服务层校验器与 gin 的绑定校验器共用这一套规则。
func RegisterCustomValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("blogcategory", func(fl validator.FieldLevel) bool {
		return consts.IsValidCategory(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("blogstatus", func(fl validator.FieldLevel) bool {
		return consts.IsValidBlogStatus(fl.Field().String())
	})
}

// ValidateStruct 按 validate 标签校验结构体，失败时返回首个字段的可读错误信息。
func ValidateStruct(s interface{}) (bool, string) {
	err := validate.Struct(s)
	if err == nil {
		return true, ""
	}
	return false, ValidationMessage(err)
}

// ValidationMessage 将 validator 错误转换为中文提示。
func ValidationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "参数格式错误"
	}

	fe := errs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s 不能为空", field)
	case "max":
		return fmt.Sprintf("%s 长度不能超过 %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s 长度不能少于 %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s 格式不正确", field)
	case "oneof", "blogcategory", "blogstatus":
		return fmt.Sprintf("%s 取值无效", field)
	default:
		return fmt.Sprintf("%s 校验失败", field)
	}
}
