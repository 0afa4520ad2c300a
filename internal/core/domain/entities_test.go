package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("nil due date is not overdue", func(t *testing.T) {
		assert.False(t, IsOverdue(nil, now))
	})

	t.Run("due date equal to now is not overdue", func(t *testing.T) {
		due := now
		assert.False(t, IsOverdue(&due, now))
	})

	t.Run("future due date is not overdue", func(t *testing.T) {
		due := now.Add(24 * time.Hour)
		assert.False(t, IsOverdue(&due, now))
	})

	t.Run("past due date is overdue", func(t *testing.T) {
		due := now.Add(-time.Second)
		assert.True(t, IsOverdue(&due, now))
	})
}

func TestLoanStatus(t *testing.T) {
	returned := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		loan Loan
		want LoanStatus
	}{
		{"open when nothing returned", Loan{QuantiteEmpruntee: 5}, LoanOpen},
		{"partial while some returned", Loan{QuantiteEmpruntee: 5, QuantiteRendue: 3}, LoanPartiallyReturned},
		{"still open when fully returned without terminate", Loan{QuantiteEmpruntee: 5, QuantiteRendue: 5}, LoanOpen},
		{"closed once terminated", Loan{QuantiteEmpruntee: 5, QuantiteRendue: 5, DateRendu: &returned}, LoanClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loan.Status())
		})
	}
}

func TestLoanRemaining(t *testing.T) {
	loan := Loan{QuantiteEmpruntee: 5, QuantiteRendue: 3}
	assert.Equal(t, 2, loan.Remaining())
}

func TestRoleEligibility(t *testing.T) {
	assert.True(t, RoleDiffuser.CanDiffuse())
	assert.True(t, RoleDiffuserCollector.CanDiffuse())
	assert.False(t, RoleCollector.CanDiffuse())

	assert.True(t, RoleCollector.CanCollect())
	assert.True(t, RoleDiffuserCollector.CanCollect())
	assert.False(t, RoleDiffuser.CanCollect())

	assert.False(t, RoleOrdinary.CanDiffuse())
	assert.False(t, RoleAdmin.CanCollect())
}

func TestAccountHelpers(t *testing.T) {
	account := Account{Nom: "Dupont", Prenom: "Marie", EstSupprime: 1}
	assert.Equal(t, "Marie Dupont", account.FullName())
	assert.True(t, account.IsDeleted())

	account.EstSupprime = 0
	assert.False(t, account.IsDeleted())
}
