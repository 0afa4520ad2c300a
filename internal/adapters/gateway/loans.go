package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"consigne-admin/internal/core/domain"
)

// FinishLoanRequest is the finishEmprunt body: the borrower, a return
// manifest keyed by container id, and the receiving collector.
type FinishLoanRequest struct {
	IDUser       uint         `json:"idUser"`
	ListeRendu   map[uint]int `json:"ListeRendu"`
	IDCollecteur uint         `json:"idCollecteur"`
}

// GetLoans fetches every loan
func (c *Client) GetLoans(ctx context.Context) ([]domain.Loan, error) {
	var loans []domain.Loan
	if err := c.do(ctx, http.MethodGet, "/emprunt/getAll", nil, nil, &loans); err != nil {
		return nil, mapErr(err)
	}
	return loans, nil
}

// BeginLoan opens a new loan; the server assigns the id and due date
func (c *Client) BeginLoan(ctx context.Context, userID, containerID, diffuserID uint, quantity int) error {
	query := url.Values{}
	query.Set("idUser", strconv.FormatUint(uint64(userID), 10))
	query.Set("idContenant", strconv.FormatUint(uint64(containerID), 10))
	query.Set("idDiffuseur", strconv.FormatUint(uint64(diffuserID), 10))
	query.Set("quantiteEmpruntee", strconv.Itoa(quantity))

	return mapErr(c.do(ctx, http.MethodPost, "/emprunt/addEmprunt", query, nil, nil))
}

// EditLoan submits a full overwrite of an existing loan
func (c *Client) EditLoan(ctx context.Context, loan domain.Loan) error {
	return mapErr(c.do(ctx, http.MethodPost, "/emprunt/add", nil, loan, nil))
}

// ProlongLoan asks the server to extend the due date by its fixed increment;
// the client never computes the new date itself.
func (c *Client) ProlongLoan(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/emprunt/prolong/%d", id)
	return mapErr(c.do(ctx, http.MethodPost, path, nil, nil, nil))
}

// FinishLoan terminates a loan with its return manifest
func (c *Client) FinishLoan(ctx context.Context, req FinishLoanRequest) error {
	return mapErr(c.do(ctx, http.MethodPost, "/emprunt/finishEmprunt", nil, req, nil))
}

// ReturnContainer registers a partial return. The server answers 409 when
// the due date has passed on its side; that becomes ErrLoanOverdue, the
// same message as the client-side guard.
func (c *Client) ReturnContainer(ctx context.Context, loanID uint, quantity int, collectorID uint) error {
	query := url.Values{}
	query.Set("empruntId", strconv.FormatUint(uint64(loanID), 10))
	query.Set("quantite", strconv.Itoa(quantity))
	query.Set("collecteurId", strconv.FormatUint(uint64(collectorID), 10))

	err := c.do(ctx, http.MethodPost, "/emprunt/retournerContenant", query, nil, nil)
	if se, ok := statusOf(err); ok && se.Code == http.StatusConflict {
		return domain.ErrLoanOverdue
	}
	return mapErr(err)
}
