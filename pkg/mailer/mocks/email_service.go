package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/swamyslabs/storefront/internal/models"
)

// EmailService is a testify mock of mailer.EmailService.
type EmailService struct {
	mock.Mock
}

func (m *EmailService) Send(ctx context.Context, req *models.EmailRequest) error {
	args := m.Called(ctx, req)

	return args.Error(0)
}
