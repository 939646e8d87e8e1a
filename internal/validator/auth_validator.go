package validator

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"app/internal/usecase"
)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// サインアップの入力を検証
// 最初に失敗したルールのメッセージをそのまま返す。
func (v *authValidator) ValidateSignup(ctx context.Context, name string, email string, password string, confirmPassword string) error {
	// 必須チェック
	if strings.TrimSpace(name) == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	// email形式
	if !isEmailLike(email) {
		return usecase.NewHTTPError(http.StatusBadRequest, "Valid email is required")
	}

	// パスワード最低文字数（8）
	if len(password) < 8 {
		return usecase.NewHTTPError(http.StatusBadRequest, "Password must be at least 8 characters")
	}

	// 確認用パスワード一致
	if confirmPassword != password {
		return usecase.NewHTTPError(http.StatusBadRequest, "Passwords do not match")
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	// email形式
	if !isEmailLike(email) {
		return usecase.NewHTTPError(http.StatusBadRequest, "Valid email is required")
	}

	// 必須チェック
	if password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "Password is required")
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(strings.TrimSpace(s))
}
