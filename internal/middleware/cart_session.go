package middleware

import (
	"net/http"
	"time"

	"app/internal/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CtxCartSessionKey = "cart_session" // string

	cartSessionCookie = "cart_session"

	// カートはリロードをまたいで残す
	cartSessionTTL = 180 * 24 * time.Hour
)

// CartSessionはカート用のセッションIDをCookieで維持する。
// 無ければUUIDを発行してセットする。ログイン不要（未認証でもカートは使える）。
func CartSession(cfg config.Config) echo.MiddlewareFunc {
	secure := cfg.GoEnv == "prod"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ck, err := c.Cookie(cartSessionCookie); err == nil && ck.Value != "" {
				c.Set(CtxCartSessionKey, ck.Value)
				return next(c)
			}

			sessionID := uuid.NewString()

			c.SetCookie(&http.Cookie{
				Name:     cartSessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
				Expires:  time.Now().Add(cartSessionTTL),
			})

			c.Set(CtxCartSessionKey, sessionID)
			return next(c)
		}
	}
}
