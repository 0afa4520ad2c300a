package services

import (
	"context"
	"strings"

	"consigne-admin/internal/core/domain"
	"consigne-admin/internal/core/view"
)

// UserService implements the user management page view-model: the account
// list plus create/edit/soft-delete and the bulk email selection.
type UserService struct {
	accounts AccountGateway
}

// NewUserService creates a new user service
func NewUserService(accounts AccountGateway) *UserService {
	return &UserService{accounts: accounts}
}

// List fetches every account
func (s *UserService) List(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.GetAccounts(ctx)
}

// Create adds an account and re-fetches the list
func (s *UserService) Create(ctx context.Context, account domain.Account) ([]domain.Account, error) {
	if err := validateAccount(account); err != nil {
		return nil, err
	}

	if err := s.accounts.AddAccount(ctx, account); err != nil {
		return nil, err
	}
	return s.accounts.GetAccounts(ctx)
}

// Update overwrites an account's details and re-fetches the list
func (s *UserService) Update(ctx context.Context, account domain.Account) ([]domain.Account, error) {
	if account.ID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := validateAccount(account); err != nil {
		return nil, err
	}

	if err := s.accounts.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}
	return s.accounts.GetAccounts(ctx)
}

// SoftDelete flips an account's deletion flag and re-fetches the list. The
// row stays in the collection, marked deleted.
func (s *UserService) SoftDelete(ctx context.Context, id uint) ([]domain.Account, error) {
	if id == 0 {
		return nil, domain.ErrInvalidInput
	}

	if err := s.accounts.DeleteAccount(ctx, id); err != nil {
		return nil, err
	}
	return s.accounts.GetAccounts(ctx)
}

// Emails joins the addresses of the selected accounts for the bulk
// copy-emails action
func (s *UserService) Emails(ctx context.Context, selected []uint) (string, error) {
	accounts, err := s.accounts.GetAccounts(ctx)
	if err != nil {
		return "", err
	}
	return view.CollectEmails(accounts, selected), nil
}

func validateAccount(account domain.Account) error {
	if strings.TrimSpace(account.Nom) == "" || strings.TrimSpace(account.Mail) == "" {
		return domain.ErrInvalidInput
	}
	if account.Role < domain.RoleOrdinary || account.Role > domain.RoleDiffuserCollector {
		return domain.ErrInvalidInput
	}
	return nil
}
