package services

import (
	"context"
	"time"

	"consigne-admin/internal/adapters/gateway"
	"consigne-admin/internal/core/domain"
)

// Gateway interfaces consumed by the services. The gateway.Client satisfies
// all of them; tests substitute fakes.

// LoanGateway covers the emprunt endpoints
type LoanGateway interface {
	GetLoans(ctx context.Context) ([]domain.Loan, error)
	BeginLoan(ctx context.Context, userID, containerID, diffuserID uint, quantity int) error
	EditLoan(ctx context.Context, loan domain.Loan) error
	ProlongLoan(ctx context.Context, id uint) error
	FinishLoan(ctx context.Context, req gateway.FinishLoanRequest) error
	ReturnContainer(ctx context.Context, loanID uint, quantity int, collectorID uint) error
}

// AccountGateway covers the account endpoints
type AccountGateway interface {
	GetAccounts(ctx context.Context) ([]domain.Account, error)
	AddAccount(ctx context.Context, account domain.Account) error
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, id uint) error
	LoginAdmin(ctx context.Context, email, password string) (*gateway.LoginResult, error)
}

// RefDataGateway covers the diffuser/collector/container reference reads
type RefDataGateway interface {
	GetDiffusers(ctx context.Context) ([]domain.Diffuser, error)
	GetCollectors(ctx context.Context) ([]domain.Collector, error)
	GetContainers(ctx context.Context) ([]domain.Container, error)
}

// StockGateway covers the stock endpoints
type StockGateway interface {
	GetStockByDiffuser(ctx context.Context, diffuserID uint) ([]domain.Stock, error)
	AddStock(ctx context.Context, req gateway.AddStockRequest) error
	DeleteStock(ctx context.Context, id uint) error
}

// StatsGateway covers the read-only statistics endpoints
type StatsGateway interface {
	GetGlobalStats(ctx context.Context) (*domain.GlobalStats, error)
	GetTopBorrowers(ctx context.Context) ([]domain.TopEntry, error)
	GetTopDiffusers(ctx context.Context) ([]domain.TopEntry, error)
	GetTopContainers(ctx context.Context) ([]domain.TopEntry, error)
	GetDiffuserStats(ctx context.Context, diffuserID uint) (*domain.DiffuserStats, error)
	GetStatsByDateRange(ctx context.Context, debut, fin string) (*domain.GlobalStats, error)
}

// SessionStore persists console sessions between restarts
type SessionStore interface {
	Create(key, blob string, ttl time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
}
