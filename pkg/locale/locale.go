package locale

import (
	"context"
	"strings"
)

type ctxKey struct{}

// ParseLang normalizes a language code, falling back to DefaultLang.
func ParseLang(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))

	switch lang {
	case EN, "english":
		return EN
	case VI, "vietnamese", "việt nam":
		return VI
	case JA, "japanese":
		return JA
	default:
		return DefaultLang
	}
}

// IsValidLang checks if a language code is supported.
func IsValidLang(lang string) bool {
	lang = strings.TrimSpace(strings.ToLower(lang))
	for _, supported := range LangList {
		if lang == supported {
			return true
		}
	}
	return false
}

// SetLocaleToContext stores lang in ctx. Unsupported codes become DefaultLang.
func SetLocaleToContext(ctx context.Context, lang string) context.Context {
	if !IsValidLang(lang) {
		lang = DefaultLang
	}
	return context.WithValue(ctx, ctxKey{}, lang)
}

// GetLang retrieves the locale from context, returning the default if not found.
func GetLang(ctx context.Context) string {
	if ctx == nil {
		return DefaultLang
	}
	lang, ok := ctx.Value(ctxKey{}).(string)
	if !ok || lang == "" {
		return DefaultLang
	}
	return lang
}
