package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"coingarden/models"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const sessionCookie = "session"

type contextKey string

const usernameKey contextKey = "username"

func usernameFromContext(r *http.Request) string {
	username, _ := r.Context().Value(usernameKey).(string)
	return username
}

// SessionMiddleware принимает подписанный токен сессии из cookie либо из
// заголовка Authorization: Bearer и кладёт имя пользователя в контекст.
func (h Handler) SessionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr := ""
		if cookie, err := r.Cookie(sessionCookie); err == nil {
			tokenStr = cookie.Value
		}
		if tokenStr == "" {
			const bearerPrefix = "Bearer "
			if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, bearerPrefix) {
				tokenStr = authHeader[len(bearerPrefix):]
			}
		}
		if tokenStr == "" {
			h.respondError(w, models.ErrUnauthorized)
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, models.ErrUnauthorized
			}
			return []byte(h.jwtSecret), nil
		})
		if err != nil || !token.Valid {
			h.respondError(w, models.ErrUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			h.respondError(w, models.ErrUnauthorized)
			return
		}
		username, ok := claims["username"].(string)
		if !ok || username == "" {
			h.respondError(w, models.ErrUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), usernameKey, username)
		next(w, r.WithContext(ctx))
	}
}

// AdminMiddleware сверяет заголовок Admin-Key с настроенным ключом.
func (h Handler) AdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("Admin-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(h.adminKey)) != 1 {
			h.respondError(w, models.ErrUnauthorized)
			return
		}
		next(w, r)
	}
}

// CORSMiddleware проставляет те же заголовки, что отдавал исходный сервер.
func (h Handler) CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization,Cookie,Admin-Key")
		w.Header().Set("Access-Control-Allow-Methods", "GET,PUT,POST,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (h Handler) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Info("запрос",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
