package view

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"consigne-admin/internal/core/domain"
	"consigne-admin/internal/pkg/pagination"
)

// StatusFilter selects loans by lifecycle state
type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = "active"
	StatusReturned StatusFilter = "returned"
)

// LoanSortKey selects the active sort column
type LoanSortKey string

const (
	SortByID            LoanSortKey = "id"
	SortByBorrower      LoanSortKey = "emprunteur"
	SortByContainer     LoanSortKey = "contenant"
	SortByDiffuser      LoanSortKey = "diffuseur"
	SortByLoanDate      LoanSortKey = "dateEmprunt"
	SortByQuantity      LoanSortKey = "quantite"
	SortByReturned      LoanSortKey = "quantiteRendue"
	SortByDueDate       LoanSortKey = "dateRetour"
	SortByReturnDate    LoanSortKey = "dateRendu"
	SortByCollectorName LoanSortKey = "collecteur"
)

// LoanQuery is the full view state for the loan page: status filter,
// free-text search, sort key and direction, and the pagination window.
type LoanQuery struct {
	Status   StatusFilter
	Search   string
	SortKey  LoanSortKey
	SortDesc bool
	Window   pagination.Params
}

// LoanStats are derived over the filtered set, before pagination
type LoanStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Returned int `json:"returned"`
	Overdue  int `json:"overdue"`
	Partial  int `json:"partial"`
}

// LoanView is the visible slice plus its derived statistics
type LoanView struct {
	Items []domain.Loan   `json:"items"`
	Stats LoanStats       `json:"stats"`
	Meta  pagination.Meta `json:"meta"`
}

// ApplyLoanQuery derives the visible page from the raw loan list. It is a
// pure function of (list, query, now): filter, then sort, then window. The
// input slice is never modified.
func ApplyLoanQuery(loans []domain.Loan, q LoanQuery, now time.Time) LoanView {
	filtered := filterLoans(loans, q)
	stats := deriveLoanStats(filtered, now)

	sortLoans(filtered, q.SortKey, q.SortDesc)

	lo, hi := q.Window.Window(len(filtered))
	return LoanView{
		Items: filtered[lo:hi],
		Stats: stats,
		Meta:  pagination.GetMeta(q.Window, len(filtered)),
	}
}

func filterLoans(loans []domain.Loan, q LoanQuery) []domain.Loan {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]domain.Loan, 0, len(loans))
	for _, l := range loans {
		switch q.Status {
		case StatusActive:
			if !l.IsActive() {
				continue
			}
		case StatusReturned:
			if l.IsActive() {
				continue
			}
		}
		if needle != "" && !loanMatches(l, needle) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// loanMatches reports whether any displayed field contains the needle
func loanMatches(l domain.Loan, needle string) bool {
	fields := []string{
		l.Emprunteur.FullName(),
		l.Diffuseur.Nom,
		l.Contenant.Nom,
		FormatDate(l.DateEmprunt),
		FormatDate(l.DateRetour),
		fmt.Sprintf("%d", l.QuantiteEmpruntee),
	}
	if l.Collecteur != nil {
		fields = append(fields, l.Collecteur.Nom)
	}
	if l.DateRendu != nil {
		fields = append(fields, FormatDate(*l.DateRendu))
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// FormatDate renders a date the way the pages display it (D/M/Y)
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func deriveLoanStats(loans []domain.Loan, now time.Time) LoanStats {
	s := LoanStats{Total: len(loans)}
	for _, l := range loans {
		if !l.IsActive() {
			s.Returned++
			continue
		}
		s.Active++
		if l.IsOverdue(now) {
			s.Overdue++
		}
		if l.QuantiteRendue > 0 && l.QuantiteRendue < l.QuantiteEmpruntee {
			s.Partial++
		}
	}
	return s
}

// sortLoans orders loans in place by the active key. Entries whose key is
// null always trail, whatever the direction.
func sortLoans(loans []domain.Loan, key LoanSortKey, desc bool) {
	if key == "" {
		key = SortByID
	}

	sort.SliceStable(loans, func(i, j int) bool {
		cmp, iNull, jNull := compareLoans(loans[i], loans[j], key)
		if iNull || jNull {
			return !iNull && jNull
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// compareLoans compares a single key of two loans. The null flags mark
// entries missing the key (unset return date, absent collector).
func compareLoans(a, b domain.Loan, key LoanSortKey) (cmp int, aNull, bNull bool) {
	switch key {
	case SortByBorrower:
		return strings.Compare(a.Emprunteur.FullName(), b.Emprunteur.FullName()), false, false
	case SortByContainer:
		return strings.Compare(a.Contenant.Nom, b.Contenant.Nom), false, false
	case SortByDiffuser:
		return strings.Compare(a.Diffuseur.Nom, b.Diffuseur.Nom), false, false
	case SortByLoanDate:
		return compareTimes(a.DateEmprunt, b.DateEmprunt), false, false
	case SortByQuantity:
		return a.QuantiteEmpruntee - b.QuantiteEmpruntee, false, false
	case SortByReturned:
		return a.QuantiteRendue - b.QuantiteRendue, false, false
	case SortByDueDate:
		return compareTimes(a.DateRetour, b.DateRetour), false, false
	case SortByReturnDate:
		if a.DateRendu == nil || b.DateRendu == nil {
			return 0, a.DateRendu == nil, b.DateRendu == nil
		}
		return compareTimes(*a.DateRendu, *b.DateRendu), false, false
	case SortByCollectorName:
		if a.Collecteur == nil || b.Collecteur == nil {
			return 0, a.Collecteur == nil, b.Collecteur == nil
		}
		return strings.Compare(a.Collecteur.Nom, b.Collecteur.Nom), false, false
	default:
		return int(a.ID) - int(b.ID), false, false
	}
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
