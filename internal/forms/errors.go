package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to a human-readable error message.
type FieldErrors map[string]string

func (e FieldErrors) Has() bool {
	return len(e) > 0
}

// labels are the display names used when building error messages. Fields
// missing here fall back to the raw field name.
var labels = map[string]string{
	"username":         "用户名",
	"password":         "密码",
	"confirm_password": "确认密码",
	"title":            "标题",
	"name":             "姓名",
	"name_en":          "英文名称",
	"keywords":         "关键词",
	"description":      "描述",
	"content":          "内容",
	"source":           "来源",
	"pic":              "图片",
	"category_id":      "分类",
	"country_id":       "国家",
	"continent_id":     "大洲",
	"country_name":     "国家",
	"time":             "时间",
	"address":          "地址",
	"city":             "城市",
	"features":         "特色",
	"total_price":      "总价",
	"unit_price":       "单价",
	"category":         "类别",
	"ownership":        "产权",
	"layout":           "户型",
	"decoration":       "装修",
	"status":           "状态",
	"url":              "链接",
	"qq":               "QQ号",
	"sort_order":       "排序",
	"gender":           "性别",
	"phone":            "联系电话",
	"phone2":           "备用电话",
	"birthday":         "出生日期",
	"email":            "邮箱",
	"target_country":   "目标国家",
	"target_country2":  "备选国家",
	"intention":        "移民意向",
	"callback_time":    "回电时间",
	"budget":           "预算",
	"english":          "英语水平",
	"legal_person":     "是否法人",
	"shareholder":      "是否股东",
	"position":         "职务",
	"company":          "企业名称",
	"referral":         "信息来源",
}

// selectFields render as dropdowns, so "required" reads as a selection
// prompt instead of an input prompt.
var selectFields = map[string]bool{
	"category_id":    true,
	"country_id":     true,
	"continent_id":   true,
	"target_country": true,
	"gender":         true,
	"status":         true,
}

func init() {
	// Report errors under the form tag name instead of the Go field name
	// so templates can match messages to inputs.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// Translate converts a gin binding error into per-field messages. Type
// coercion failures (e.g. a non-numeric value posted to a numeric field)
// are reported as a form-level message under "_form".
func Translate(err error) FieldErrors {
	errs := FieldErrors{}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_form"] = "表单数据格式不正确，请检查后重新提交"
		return errs
	}

	for _, fe := range validationErrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = message(field, fe)
	}
	return errs
}

func message(field string, fe validator.FieldError) string {
	label := labels[field]
	if label == "" {
		label = field
	}

	switch fe.Tag() {
	case "required":
		if selectFields[field] {
			return "请选择" + label
		}
		return "请输入" + label
	case "max":
		return fmt.Sprintf("%s不能超过%s字", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s长度至少%s个字符", label, fe.Param())
	case "email":
		return "请输入有效的邮箱地址"
	case "eqfield":
		return "两次输入的密码不一致"
	case "oneof":
		return label + "取值无效"
	default:
		return label + "格式不正确"
	}
}
