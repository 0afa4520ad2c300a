package view

import (
	"sort"
	"strings"

	"consigne-admin/internal/core/domain"
	"consigne-admin/internal/pkg/pagination"
)

// AccountSortKey selects the active sort column on the user page
type AccountSortKey string

const (
	AccountSortByID       AccountSortKey = "id"
	AccountSortByLastName AccountSortKey = "nom"
	AccountSortByUsername AccountSortKey = "username"
	AccountSortByMail     AccountSortKey = "mail"
	AccountSortByRole     AccountSortKey = "role"
)

// AccountQuery is the view state for the user management page. Role filters
// exactly when non-nil; Search matches any displayed field.
type AccountQuery struct {
	Search   string
	Role     *domain.Role
	SortKey  AccountSortKey
	SortDesc bool
	Window   pagination.Params
}

// AccountView is the visible slice of accounts
type AccountView struct {
	Items []domain.Account `json:"items"`
	Meta  pagination.Meta  `json:"meta"`
}

// ApplyAccountQuery derives the visible page from the raw account list,
// with the same filter-sort-window shape as the loan pipeline.
func ApplyAccountQuery(accounts []domain.Account, q AccountQuery) AccountView {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	filtered := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if q.Role != nil && a.Role != *q.Role {
			continue
		}
		if needle != "" && !accountMatches(a, needle) {
			continue
		}
		filtered = append(filtered, a)
	}

	sortAccounts(filtered, q.SortKey, q.SortDesc)

	lo, hi := q.Window.Window(len(filtered))
	return AccountView{
		Items: filtered[lo:hi],
		Meta:  pagination.GetMeta(q.Window, len(filtered)),
	}
}

func accountMatches(a domain.Account, needle string) bool {
	for _, f := range []string{a.Nom, a.Prenom, a.FullName(), a.Username, a.Mail, a.Telephone, a.Role.Label()} {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func sortAccounts(accounts []domain.Account, key AccountSortKey, desc bool) {
	if key == "" {
		key = AccountSortByID
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		a, b := accounts[i], accounts[j]
		var cmp int
		switch key {
		case AccountSortByLastName:
			cmp = strings.Compare(a.Nom, b.Nom)
		case AccountSortByUsername:
			cmp = strings.Compare(a.Username, b.Username)
		case AccountSortByMail:
			cmp = strings.Compare(a.Mail, b.Mail)
		case AccountSortByRole:
			cmp = int(a.Role) - int(b.Role)
		default:
			cmp = int(a.ID) - int(b.ID)
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// EligibleBorrowers lists non-deleted accounts sorted by last name, for the
// borrower dropdown.
func EligibleBorrowers(accounts []domain.Account) []domain.Account {
	out := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if !a.IsDeleted() {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Nom < out[j].Nom
	})
	return out
}

// EligibleDiffusers keeps diffusers whose owning account may diffuse
// (role 3 or 5), sorted by name ascending.
func EligibleDiffusers(diffusers []domain.Diffuser) []domain.Diffuser {
	out := make([]domain.Diffuser, 0, len(diffusers))
	for _, d := range diffusers {
		if d.Account.Role.CanDiffuse() {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Nom < out[j].Nom
	})
	return out
}

// EligibleCollectors keeps collectors whose owning account may collect
// (role 4 or 5), sorted by name ascending.
func EligibleCollectors(collectors []domain.Collector) []domain.Collector {
	out := make([]domain.Collector, 0, len(collectors))
	for _, c := range collectors {
		if c.Account.Role.CanCollect() {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Nom < out[j].Nom
	})
	return out
}

// CollectEmails joins the emails of the selected accounts, skipping deleted
// ones and ids that match nothing. Used by the bulk "copy emails" action.
func CollectEmails(accounts []domain.Account, selected []uint) string {
	byID := make(map[uint]domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	emails := make([]string, 0, len(selected))
	for _, id := range selected {
		a, ok := byID[id]
		if !ok || a.IsDeleted() || a.Mail == "" {
			continue
		}
		emails = append(emails, a.Mail)
	}
	return strings.Join(emails, "; ")
}
