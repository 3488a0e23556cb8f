package i18n

import (
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// The English texts double as the wire-level error messages, so they must
// stay byte-for-byte stable; clients match on them.
var messages = map[string]map[string]string{
	"en": {
		ERROR_INTERNAL:            "Database error",
		ERROR_INVALIDARGUMENT:     "Invalid request arguments",
		ERROR_TOO_MANY_REQUESTS:   "Too many requests",
		ERROR_UNAUTHORIZED:        "No token provided",
		ERROR_INVALID_TOKEN:       "Invalid token",
		ERROR_INVALID_TOKEN_FMT:   "Invalid token format",
		ERROR_INVALID_CREDENTIALS: "Invalid credentials",
		ERROR_FIELDS_REQUIRED:     "All fields are required",
		ERROR_USER_EXIST:          "User already exists",
		ERROR_USER_NOTFOUND:       "User not found",
		ERROR_COUNTRY_REQUIRED:    "Country code and name are required",
		ERROR_ENTRY_NOTFOUND:      "Entry not found or access denied",
		ERROR_COUNTRIES_FETCH:     "Failed to fetch countries data",
		ERROR_COUNTRY_FETCH:       "Failed to fetch country data",
		ERROR_COUNTRY_NOTFOUND:    "Country not found",
	},
	"zh-CN": {
		ERROR_INTERNAL:            "数据库错误",
		ERROR_INVALIDARGUMENT:     "请求参数无效",
		ERROR_TOO_MANY_REQUESTS:   "请求过于频繁",
		ERROR_UNAUTHORIZED:        "未提供令牌",
		ERROR_INVALID_TOKEN:       "令牌无效",
		ERROR_INVALID_TOKEN_FMT:   "令牌格式无效",
		ERROR_INVALID_CREDENTIALS: "用户名或密码错误",
		ERROR_FIELDS_REQUIRED:     "所有字段均为必填",
		ERROR_USER_EXIST:          "用户已存在",
		ERROR_USER_NOTFOUND:       "用户不存在",
		ERROR_COUNTRY_REQUIRED:    "国家代码和名称为必填项",
		ERROR_ENTRY_NOTFOUND:      "日志不存在或无权访问",
		ERROR_COUNTRIES_FETCH:     "获取国家数据失败",
		ERROR_COUNTRY_FETCH:       "获取国家详情失败",
		ERROR_COUNTRY_NOTFOUND:    "国家不存在",
	},
}

type Localizer struct {
	bundle *goi18n.Bundle
}

func NewLocalizer(allow ...string) *Localizer {
	bundle := goi18n.NewBundle(language.English)
	for lang, msgs := range messages {
		if len(allow) > 0 && !contains(allow, lang) {
			continue
		}
		tag := language.MustParse(lang)
		for id, text := range msgs {
			// AddMessages panics only on duplicate ids, which the map rules out.
			if err := bundle.AddMessages(tag, &goi18n.Message{ID: id, Other: text}); err != nil {
				panic(err)
			}
		}
	}
	return &Localizer{bundle: bundle}
}

// Get resolves key for the given Accept-Language value, falling back to
// English, then to the key itself.
func (l *Localizer) Get(lang, key string) string {
	localizer := goi18n.NewLocalizer(l.bundle, lang, DEFAULT_LANG)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
