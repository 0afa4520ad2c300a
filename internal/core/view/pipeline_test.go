package view

import (
	"fmt"
	"testing"
	"time"

	"consigne-admin/internal/core/domain"
	"consigne-admin/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func makeLoan(id uint, borrower string, returned bool) domain.Loan {
	loan := domain.Loan{
		ID:                id,
		Emprunteur:        domain.Account{Nom: borrower, Prenom: "Test"},
		Contenant:         domain.Container{Nom: fmt.Sprintf("bocal-%d", id), Taille: domain.SizeM},
		Diffuseur:         domain.Diffuser{Nom: "Epicerie du Port"},
		DateEmprunt:       testNow.AddDate(0, 0, -int(id)),
		DateRetour:        testNow.AddDate(0, 0, 7),
		QuantiteEmpruntee: int(id),
	}
	if returned {
		done := testNow.AddDate(0, 0, -1)
		loan.DateRendu = &done
	}
	return loan
}

func TestStatusFilterPartitionsLoans(t *testing.T) {
	loans := []domain.Loan{
		makeLoan(1, "Alpha", false),
		makeLoan(2, "Beta", true),
		makeLoan(3, "Gamma", false),
		makeLoan(4, "Delta", true),
		makeLoan(5, "Epsilon", false),
	}
	window := pagination.Params{Page: 0, Size: 100}

	active := ApplyLoanQuery(loans, LoanQuery{Status: StatusActive, Window: window}, testNow)
	returned := ApplyLoanQuery(loans, LoanQuery{Status: StatusReturned, Window: window}, testNow)
	all := ApplyLoanQuery(loans, LoanQuery{Status: StatusAll, Window: window}, testNow)

	// No overlap, union equals the full set
	assert.Len(t, active.Items, 3)
	assert.Len(t, returned.Items, 2)
	assert.Len(t, all.Items, 5)
	assert.Equal(t, len(all.Items), len(active.Items)+len(returned.Items))

	for _, l := range active.Items {
		assert.Nil(t, l.DateRendu)
	}
	for _, l := range returned.Items {
		assert.NotNil(t, l.DateRendu)
	}
}

func TestSearchMatchesAnyDisplayedField(t *testing.T) {
	loans := []domain.Loan{
		makeLoan(1, "Dupont", false),
		makeLoan(2, "Martin", false),
	}
	window := pagination.Params{Page: 0, Size: 100}

	t.Run("borrower name, case-insensitive", func(t *testing.T) {
		v := ApplyLoanQuery(loans, LoanQuery{Search: "dupONT", Window: window}, testNow)
		require.Len(t, v.Items, 1)
		assert.Equal(t, uint(1), v.Items[0].ID)
	})

	t.Run("container name", func(t *testing.T) {
		v := ApplyLoanQuery(loans, LoanQuery{Search: "bocal-2", Window: window}, testNow)
		require.Len(t, v.Items, 1)
		assert.Equal(t, uint(2), v.Items[0].ID)
	})

	t.Run("localized loan date", func(t *testing.T) {
		needle := FormatDate(loans[0].DateEmprunt)
		v := ApplyLoanQuery(loans, LoanQuery{Search: needle, Window: window}, testNow)
		require.NotEmpty(t, v.Items)
	})

	t.Run("localized due date", func(t *testing.T) {
		distinct := makeLoan(3, "Durand", false)
		distinct.DateRetour = testNow.AddDate(0, 1, 0)

		v := ApplyLoanQuery(append(loans, distinct), LoanQuery{Search: FormatDate(distinct.DateRetour), Window: window}, testNow)
		require.Len(t, v.Items, 1)
		assert.Equal(t, uint(3), v.Items[0].ID)
	})

	t.Run("collector name when set", func(t *testing.T) {
		collected := makeLoan(3, "Durand", false)
		collected.Collecteur = &domain.Collector{Nom: "Atelier Retour"}

		v := ApplyLoanQuery(append(loans, collected), LoanQuery{Search: "atelier", Window: window}, testNow)
		require.Len(t, v.Items, 1)
		assert.Equal(t, uint(3), v.Items[0].ID)
	})

	t.Run("quantity as string", func(t *testing.T) {
		v := ApplyLoanQuery(loans, LoanQuery{Search: "2", Window: window}, testNow)
		assert.NotEmpty(t, v.Items)
	})

	t.Run("no match", func(t *testing.T) {
		v := ApplyLoanQuery(loans, LoanQuery{Search: "zzz-nothing", Window: window}, testNow)
		assert.Empty(t, v.Items)
	})
}

func TestSortReversalIsExactReverse(t *testing.T) {
	loans := []domain.Loan{
		makeLoan(3, "Charlie", false),
		makeLoan(1, "Alice", false),
		makeLoan(2, "Bob", false),
	}
	window := pagination.Params{Page: 0, Size: 100}

	asc := ApplyLoanQuery(loans, LoanQuery{SortKey: SortByBorrower, Window: window}, testNow)
	desc := ApplyLoanQuery(loans, LoanQuery{SortKey: SortByBorrower, SortDesc: true, Window: window}, testNow)

	require.Len(t, asc.Items, 3)
	for i := range asc.Items {
		assert.Equal(t, asc.Items[i].ID, desc.Items[len(desc.Items)-1-i].ID)
	}
}

func TestNullKeysTrailRegardlessOfDirection(t *testing.T) {
	withCollector := makeLoan(1, "Alpha", false)
	withCollector.Collecteur = &domain.Collector{Nom: "Collecte Centre"}
	withoutCollector := makeLoan(2, "Beta", false)
	otherCollector := makeLoan(3, "Gamma", false)
	otherCollector.Collecteur = &domain.Collector{Nom: "Atelier Retour"}

	loans := []domain.Loan{withoutCollector, withCollector, otherCollector}
	window := pagination.Params{Page: 0, Size: 100}

	asc := ApplyLoanQuery(loans, LoanQuery{SortKey: SortByCollectorName, Window: window}, testNow)
	require.Len(t, asc.Items, 3)
	assert.Equal(t, uint(3), asc.Items[0].ID)
	assert.Equal(t, uint(1), asc.Items[1].ID)
	assert.Equal(t, uint(2), asc.Items[2].ID, "null collector must trail ascending")

	desc := ApplyLoanQuery(loans, LoanQuery{SortKey: SortByCollectorName, SortDesc: true, Window: window}, testNow)
	assert.Equal(t, uint(1), desc.Items[0].ID)
	assert.Equal(t, uint(3), desc.Items[1].ID)
	assert.Equal(t, uint(2), desc.Items[2].ID, "null collector must trail descending too")
}

func TestPaginationWindows(t *testing.T) {
	loans := make([]domain.Loan, 0, 25)
	for i := 1; i <= 25; i++ {
		loans = append(loans, makeLoan(uint(i), fmt.Sprintf("User%02d", i), false))
	}

	t.Run("first page full", func(t *testing.T) {
		v := ApplyLoanQuery(loans, LoanQuery{Window: pagination.Params{Page: 0, Size: 10}}, testNow)
		assert.Len(t, v.Items, 10)
		assert.Equal(t, 25, v.Meta.Total)
		assert.Equal(t, 3, v.Meta.TotalPages)
	})

	t.Run("last page partial", func(t *testing.T) {
		v := ApplyLoanQuery(loans, LoanQuery{Window: pagination.Params{Page: 2, Size: 10}}, testNow)
		assert.Len(t, v.Items, 5)
	})

	t.Run("page beyond range is empty, not an error", func(t *testing.T) {
		v := ApplyLoanQuery(loans, LoanQuery{Window: pagination.Params{Page: 9, Size: 10}}, testNow)
		assert.Empty(t, v.Items)
	})

	t.Run("zero-value query yields the default first page", func(t *testing.T) {
		v := ApplyLoanQuery(loans, LoanQuery{}, testNow)
		assert.Len(t, v.Items, pagination.DefaultSize)
		assert.Equal(t, 25, v.Meta.Total)
	})
}

func TestDerivedStats(t *testing.T) {
	overdue := makeLoan(1, "Alpha", false)
	overdue.DateRetour = testNow.AddDate(0, 0, -2)

	partial := makeLoan(2, "Beta", false)
	partial.QuantiteEmpruntee = 5
	partial.QuantiteRendue = 2

	closed := makeLoan(3, "Gamma", true)
	open := makeLoan(4, "Delta", false)

	v := ApplyLoanQuery([]domain.Loan{overdue, partial, closed, open},
		LoanQuery{Window: pagination.Params{Page: 0, Size: 10}}, testNow)

	assert.Equal(t, 4, v.Stats.Total)
	assert.Equal(t, 3, v.Stats.Active)
	assert.Equal(t, 1, v.Stats.Returned)
	assert.Equal(t, 1, v.Stats.Overdue)
	assert.Equal(t, 1, v.Stats.Partial)
}

func TestStatsComputedBeforePagination(t *testing.T) {
	loans := make([]domain.Loan, 0, 25)
	for i := 1; i <= 25; i++ {
		loans = append(loans, makeLoan(uint(i), fmt.Sprintf("User%02d", i), i%2 == 0))
	}

	v := ApplyLoanQuery(loans, LoanQuery{Window: pagination.Params{Page: 0, Size: 5}}, testNow)
	assert.Len(t, v.Items, 5)
	assert.Equal(t, 25, v.Stats.Total, "stats cover the filtered set, not the visible page")
}
