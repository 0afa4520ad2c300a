package services

import (
	"context"
	"sync"
	"time"

	"consigne-admin/internal/adapters/gateway"
	"consigne-admin/internal/core/domain"
	"consigne-admin/internal/core/view"
)

// LoanService implements the loan page view-model: loading the loan list
// with its reference collections, and the five lifecycle actions. Every
// mutation is fire-and-refetch: the refreshed loan list is returned so the
// page never reconciles optimistic state.
type LoanService struct {
	loans    LoanGateway
	accounts AccountGateway
	refdata  RefDataGateway
	now      func() time.Time
}

// NewLoanService creates a new loan service
func NewLoanService(loans LoanGateway, accounts AccountGateway, refdata RefDataGateway) *LoanService {
	return &LoanService{
		loans:    loans,
		accounts: accounts,
		refdata:  refdata,
		now:      time.Now,
	}
}

// LoanWorkspace is the loan page's full state: the raw loan list plus the
// selection lists, already restricted by the eligibility policies.
type LoanWorkspace struct {
	Loans      []domain.Loan      `json:"loans"`
	Borrowers  []domain.Account   `json:"borrowers"`
	Diffusers  []domain.Diffuser  `json:"diffusers"`
	Collectors []domain.Collector `json:"collectors"`
	Containers []domain.Container `json:"containers"`
}

// LoadWorkspace fetches loans and reference collections concurrently, each
// fetch writing its own slot. The page renders only once all have settled.
func (s *LoanService) LoadWorkspace(ctx context.Context) (*LoanWorkspace, error) {
	var (
		ws       LoanWorkspace
		accounts []domain.Account
		errs     [4]error
		wg       sync.WaitGroup
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		ws.Loans, errs[0] = s.loans.GetLoans(ctx)
	}()
	go func() {
		defer wg.Done()
		accounts, errs[1] = s.accounts.GetAccounts(ctx)
	}()
	go func() {
		defer wg.Done()
		var diffusers []domain.Diffuser
		diffusers, errs[2] = s.refdata.GetDiffusers(ctx)
		if errs[2] == nil {
			ws.Diffusers = view.EligibleDiffusers(diffusers)
			ws.Containers, errs[2] = s.refdata.GetContainers(ctx)
		}
	}()
	go func() {
		defer wg.Done()
		var collectors []domain.Collector
		collectors, errs[3] = s.refdata.GetCollectors(ctx)
		if errs[3] == nil {
			ws.Collectors = view.EligibleCollectors(collectors)
		}
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	ws.Borrowers = view.EligibleBorrowers(accounts)
	return &ws, nil
}

// CreateLoanInput is the "new loan" submission
type CreateLoanInput struct {
	BorrowerID  uint `json:"borrowerId"`
	ContainerID uint `json:"containerId"`
	DiffuserID  uint `json:"diffuserId"`
	Quantity    int  `json:"quantity"`
}

// Create opens a new loan; the server assigns the id and due date
func (s *LoanService) Create(ctx context.Context, input CreateLoanInput) ([]domain.Loan, error) {
	if input.Quantity < 1 {
		return nil, domain.ErrQuantityTooSmall
	}
	if input.BorrowerID == 0 || input.ContainerID == 0 || input.DiffuserID == 0 {
		return nil, domain.ErrInvalidInput
	}

	if err := s.loans.BeginLoan(ctx, input.BorrowerID, input.ContainerID, input.DiffuserID, input.Quantity); err != nil {
		return nil, err
	}
	return s.loans.GetLoans(ctx)
}

// Edit submits a full overwrite of a loan, collector included (possibly
// nil). Allowed regardless of overdue status.
func (s *LoanService) Edit(ctx context.Context, loan domain.Loan) ([]domain.Loan, error) {
	if loan.ID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if loan.QuantiteRendue < 0 || loan.QuantiteRendue > loan.QuantiteEmpruntee {
		return nil, domain.ErrQuantityExceeded
	}

	if err := s.loans.EditLoan(ctx, loan); err != nil {
		return nil, err
	}
	return s.loans.GetLoans(ctx)
}

// Prolong asks the server to extend the due date by its fixed one-week
// increment. No overdue guard applies here.
func (s *LoanService) Prolong(ctx context.Context, id uint) ([]domain.Loan, error) {
	if id == 0 {
		return nil, domain.ErrInvalidInput
	}

	if err := s.loans.ProlongLoan(ctx, id); err != nil {
		return nil, err
	}
	return s.loans.GetLoans(ctx)
}

// PartialReturnInput is a partial-return submission
type PartialReturnInput struct {
	LoanID      uint `json:"loanId"`
	Quantity    int  `json:"quantity"`
	CollectorID uint `json:"collectorId"`
}

// PartialReturn registers the return of part of a loan. The action is
// rejected locally, before any mutation call, when the loan is overdue.
func (s *LoanService) PartialReturn(ctx context.Context, input PartialReturnInput) ([]domain.Loan, error) {
	loan, loans, err := s.findLoan(ctx, input.LoanID)
	if err != nil {
		return nil, err
	}

	if loan.IsOverdue(s.now()) {
		return nil, domain.ErrLoanOverdue
	}
	if input.CollectorID == 0 {
		return nil, domain.ErrCollectorRequired
	}
	if input.Quantity < 1 {
		return nil, domain.ErrQuantityTooSmall
	}
	if input.Quantity > loan.Remaining() {
		return nil, domain.ErrQuantityExceeded
	}

	if err := s.loans.ReturnContainer(ctx, loan.ID, input.Quantity, input.CollectorID); err != nil {
		return loans, err
	}
	return s.loans.GetLoans(ctx)
}

// TerminateInput is a terminate submission. Quantity defaults to the
// remaining quantity when zero.
type TerminateInput struct {
	LoanID      uint `json:"loanId"`
	Quantity    int  `json:"quantity"`
	CollectorID uint `json:"collectorId"`
}

// Terminate closes a loan with its single-entry return manifest. Closing is
// always explicit: reaching a full return via partial returns never closes
// a loan by itself. Rejected locally when overdue, same policy as partial
// returns.
func (s *LoanService) Terminate(ctx context.Context, input TerminateInput) ([]domain.Loan, error) {
	loan, loans, err := s.findLoan(ctx, input.LoanID)
	if err != nil {
		return nil, err
	}

	if loan.IsOverdue(s.now()) {
		return nil, domain.ErrLoanOverdue
	}
	if input.CollectorID == 0 {
		return nil, domain.ErrCollectorRequired
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = loan.Remaining()
	}
	if quantity < 0 || quantity > loan.Remaining() {
		return nil, domain.ErrQuantityExceeded
	}

	req := gateway.FinishLoanRequest{
		IDUser:       loan.Emprunteur.ID,
		ListeRendu:   map[uint]int{loan.Contenant.ID: quantity},
		IDCollecteur: input.CollectorID,
	}
	if err := s.loans.FinishLoan(ctx, req); err != nil {
		return loans, err
	}
	return s.loans.GetLoans(ctx)
}

// findLoan fetches the current loan list and locates one loan in it
func (s *LoanService) findLoan(ctx context.Context, id uint) (*domain.Loan, []domain.Loan, error) {
	loans, err := s.loans.GetLoans(ctx)
	if err != nil {
		return nil, nil, err
	}
	for i := range loans {
		if loans[i].ID == id {
			return &loans[i], loans, nil
		}
	}
	return nil, loans, domain.ErrLoanNotFound
}
