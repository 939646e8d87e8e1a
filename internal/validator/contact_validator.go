package validator

import (
	"context"
	"net/http"
	"strings"

	"app/internal/usecase"
)

type contactValidator struct{}

// DI
func NewContactValidator() usecase.ContactValidator {
	return &contactValidator{}
}

// お問い合わせフォームの入力を検証
func (v *contactValidator) ValidateContact(ctx context.Context, name string, email string, message string) error {
	// 必須チェック
	if strings.TrimSpace(name) == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "Name is required")
	}

	// email形式
	if !isEmailLike(email) {
		return usecase.NewHTTPError(http.StatusBadRequest, "Valid email is required")
	}

	// 本文最低文字数（10）
	if len(strings.TrimSpace(message)) < 10 {
		return usecase.NewHTTPError(http.StatusBadRequest, "Message must be at least 10 characters")
	}

	return nil
}
