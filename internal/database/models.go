package database

import (
	"time"
)

// AuditFields are shared by every persisted entity except the case-party
// link. Timestamps are set by the store, not by GORM hooks, so that
// LastModifiedDate only moves when a mutation actually changes a row.
type AuditFields struct {
	ID               int        `json:"id" gorm:"primaryKey"`
	CreatedDate      time.Time  `json:"createdDate"`
	LastModifiedDate *time.Time `json:"lastModifiedDate"`
	IsDeleted        bool       `json:"-" gorm:"index;default:false"`
}

type Judge struct {
	AuditFields
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CourtRoom string `json:"courtRoom"`
	IsActive  bool   `json:"isActive" gorm:"default:true"`

	Cases []CourtCase `json:"cases,omitempty" gorm:"foreignKey:AssignedJudgeID"`
}

type Party struct {
	AuditFields
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	CaseParties []CaseParty `json:"caseParties,omitempty" gorm:"foreignKey:PartyID"`
}

type CourtCase struct {
	AuditFields
	CaseNumber string    `json:"caseNumber" gorm:"index"`
	Title      string    `json:"title"`
	Status     string    `json:"status"` // "Open", "Closed", "Suspended" by convention
	FilingDate time.Time `json:"filingDate"`

	AssignedJudgeID *int   `json:"assignedJudgeId"`
	AssignedJudge   *Judge `json:"assignedJudge,omitempty" gorm:"foreignKey:AssignedJudgeID"`

	Hearings    []Hearing   `json:"hearings,omitempty" gorm:"foreignKey:CourtCaseID"`
	CaseParties []CaseParty `json:"caseParties,omitempty" gorm:"foreignKey:CourtCaseID"`
}

type Hearing struct {
	AuditFields
	Description string    `json:"description"`
	HearingDate time.Time `json:"hearingDate"`
	Location    string    `json:"location"`

	// Owning case. A hearing never moves between cases.
	CourtCaseID int `json:"courtCaseId" gorm:"index"`
}

// CaseParty links a Party to a CourtCase with a role attached to the edge.
// The (case, party) pair is the identity; rows are hard-deleted on unlink.
type CaseParty struct {
	CourtCaseID int       `json:"courtCaseId" gorm:"primaryKey;autoIncrement:false"`
	PartyID     int       `json:"partyId" gorm:"primaryKey;autoIncrement:false"`
	Role        string    `json:"role"` // e.g. "Plaintiff", "Defendant", "Witness"
	CreatedDate time.Time `json:"createdDate"`

	Party *Party `json:"party,omitempty" gorm:"foreignKey:PartyID"`
}

func (Judge) TableName() string {
	return "judges"
}

func (Party) TableName() string {
	return "parties"
}

func (CourtCase) TableName() string {
	return "court_cases"
}

func (Hearing) TableName() string {
	return "hearings"
}

func (CaseParty) TableName() string {
	return "case_parties"
}
