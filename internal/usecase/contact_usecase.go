package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// usecaseがValidatorInterfaceに依存する約束
type ContactValidator interface {
	ValidateContact(ctx context.Context, name string, email string, message string) error
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactResponse struct {
	Message string `json:"message"`
}

type ContactUsecase struct {
	contacts  repo.ContactRepository
	validator ContactValidator
}

func NewContactUsecase(contacts repo.ContactRepository, validator ContactValidator) *ContactUsecase {
	return &ContactUsecase{
		contacts:  contacts,
		validator: validator,
	}
}

// Submit はPOST /api/contactの処理
func (u *ContactUsecase) Submit(ctx context.Context, req ContactRequest) (*ContactResponse, error) {
	if err := u.validator.ValidateContact(ctx, req.Name, req.Email, req.Message); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}

	if err := u.contacts.Create(ctx, contact); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return &ContactResponse{Message: "Message sent successfully"}, nil
}
