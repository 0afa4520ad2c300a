package domain

import (
	"fmt"
	"time"
)

// Role represents an account role in the lending system
type Role int

const (
	RoleOrdinary          Role = 1
	RoleAdmin             Role = 2
	RoleDiffuser          Role = 3
	RoleCollector         Role = 4
	RoleDiffuserCollector Role = 5
)

// Label returns the display label for a role
func (r Role) Label() string {
	switch r {
	case RoleOrdinary:
		return "Utilisateur"
	case RoleAdmin:
		return "Administrateur"
	case RoleDiffuser:
		return "Diffuseur"
	case RoleCollector:
		return "Collecteur"
	case RoleDiffuserCollector:
		return "Diffuseur-Collecteur"
	default:
		return "Inconnu"
	}
}

// CanDiffuse reports whether accounts with this role may own a diffuser
func (r Role) CanDiffuse() bool {
	return r == RoleDiffuser || r == RoleDiffuserCollector
}

// CanCollect reports whether accounts with this role may own a collector
func (r Role) CanCollect() bool {
	return r == RoleCollector || r == RoleDiffuserCollector
}

// Account represents a registered user of the lending system.
// EstSupprime is an int flag on the wire (0 = active, 1 = soft-deleted).
type Account struct {
	ID             uint   `json:"id"`
	Telephone      string `json:"telephone"`
	Mail           string `json:"mail"`
	Adresse        string `json:"adresse"`
	Nom            string `json:"nom"`
	Prenom         string `json:"prenom"`
	Username       string `json:"username"`
	Role           Role   `json:"role"`
	NbProlongation int    `json:"nbProlongation"`
	Password       string `json:"password,omitempty"`
	EstSupprime    int    `json:"estSupprime"`
}

// FullName returns "Prenom Nom"
func (a Account) FullName() string {
	return fmt.Sprintf("%s %s", a.Prenom, a.Nom)
}

// IsDeleted reports whether the account has been soft-deleted
func (a Account) IsDeleted() bool {
	return a.EstSupprime != 0
}

// ContainerSize is the size category of a container
type ContainerSize string

const (
	SizeS  ContainerSize = "S"
	SizeM  ContainerSize = "M"
	SizeXL ContainerSize = "XL"
)

// Container represents a reusable container model (immutable reference data)
type Container struct {
	ID     uint          `json:"id"`
	Nom    string        `json:"nom"`
	Taille ContainerSize `json:"taille"`
}

// Diffuser represents a distribution point owned by an account
type Diffuser struct {
	ID      uint    `json:"id"`
	Nom     string  `json:"nom"`
	Account Account `json:"account"`
}

// Collector represents a return point owned by an account
type Collector struct {
	ID      uint    `json:"id"`
	Nom     string  `json:"nom"`
	Account Account `json:"account"`
}

// LoanStatus is the client-observed state of a loan
type LoanStatus string

const (
	LoanOpen              LoanStatus = "open"
	LoanPartiallyReturned LoanStatus = "partial"
	LoanClosed            LoanStatus = "closed"
)

// Loan represents an emprunt of containers by a borrower from a diffuser.
// DateRendu is nil while the loan is open; it is set only by the explicit
// terminate action, never inferred from quantities.
type Loan struct {
	ID                uint       `json:"id"`
	Emprunteur        Account    `json:"utilisateur"`
	Contenant         Container  `json:"contenant"`
	Diffuseur         Diffuser   `json:"diffuseur"`
	DateEmprunt       time.Time  `json:"dateEmprunt"`
	QuantiteEmpruntee int        `json:"quantiteEmpruntee"`
	QuantiteRendue    int        `json:"quantiteRendue"`
	DateRetour        time.Time  `json:"dateRetour"`
	DateRendu         *time.Time `json:"dateRendu"`
	Collecteur        *Collector `json:"collecteur"`
}

// Status derives the lifecycle state from the loan fields
func (l Loan) Status() LoanStatus {
	if l.DateRendu != nil {
		return LoanClosed
	}
	if l.QuantiteRendue > 0 && l.QuantiteRendue < l.QuantiteEmpruntee {
		return LoanPartiallyReturned
	}
	return LoanOpen
}

// IsActive reports whether the loan is still open (not terminated)
func (l Loan) IsActive() bool {
	return l.DateRendu == nil
}

// Remaining returns the quantity still out with the borrower
func (l Loan) Remaining() int {
	return l.QuantiteEmpruntee - l.QuantiteRendue
}

// IsOverdue reports whether the loan's due date is strictly in the past
func (l Loan) IsOverdue(now time.Time) bool {
	return IsOverdue(&l.DateRetour, now)
}

// IsOverdue is the shared overdue predicate: a nil or today-or-future due
// date is not overdue.
func IsOverdue(due *time.Time, now time.Time) bool {
	if due == nil {
		return false
	}
	return due.Before(now)
}

// Stock represents the inventory of one container model at one diffuser
type Stock struct {
	ID        uint      `json:"id"`
	Diffuseur Diffuser  `json:"diffuseur"`
	Contenant Container `json:"contenant"`
	Quantite  int       `json:"quantite"`
}

// GlobalStats is the aggregate snapshot served by the stats endpoint
type GlobalStats struct {
	TotalEmprunts   int `json:"totalEmprunts"`
	EmpruntsActifs  int `json:"empruntsActifs"`
	EmpruntsRendus  int `json:"empruntsRendus"`
	TotalComptes    int `json:"totalComptes"`
	TotalDiffuseurs int `json:"totalDiffuseurs"`
	TotalContenants int `json:"totalContenants"`
}

// TopEntry is one row of a "top borrowers/diffusers/containers" ranking
type TopEntry struct {
	Nom   string `json:"nom"`
	Total int    `json:"total"`
}

// DiffuserStats is the per-diffuser aggregate snapshot
type DiffuserStats struct {
	DiffuseurID    uint `json:"diffuseurId"`
	TotalEmprunts  int  `json:"totalEmprunts"`
	EmpruntsActifs int  `json:"empruntsActifs"`
	StockTotal     int  `json:"stockTotal"`
}
