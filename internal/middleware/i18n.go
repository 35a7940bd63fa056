package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// LocaleKey is the context key under which the request locale is stored.
var LocaleKey = localeContextKey{}

var supportedLocales = language.NewMatcher([]language.Tag{
	language.BrazilianPortuguese, // default
	language.English,
})

// I18N resolves the request locale ("pt" or "en") from the X-Locale header or
// Accept-Language and stores it in the context for error messages.
func I18N(defaultLocale string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := detectLocale(r, defaultLocale)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), LocaleKey, locale)))
		})
	}
}

func detectLocale(r *http.Request, fallback string) string {
	if v := r.Header.Get("X-Locale"); v != "" {
		return normalizeLocale(v)
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			tag, _, _ := supportedLocales.Match(tags...)
			return normalizeLocale(tag.String())
		}
	}
	if fallback != "" {
		return normalizeLocale(fallback)
	}
	return "pt"
}

func normalizeLocale(locale string) string {
	if strings.HasPrefix(strings.ToLower(locale), "en") {
		return "en"
	}
	return "pt"
}

// LocaleFromContext returns the resolved locale, defaulting to pt.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok {
		return v
	}
	return "pt"
}

// ClientIP returns the best-effort client IP address for the request.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		parts := strings.Split(xf, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
