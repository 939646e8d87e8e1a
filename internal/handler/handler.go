package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 全エンドポイント共通のエラー/成功の入れ物。
// フロントは{message}を読んで表示する。
type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, MessageResponse{Message: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "internal error"})
}

// AuthJWTが入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	raw := c.Get(middleware.CtxUserIDKey)
	userID, ok := raw.(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// CartSessionが入れたセッションIDを取り出す
func getCartSessionFromContext(c echo.Context) (string, bool) {
	raw := c.Get(middleware.CtxCartSessionKey)
	key, ok := raw.(string)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
