// Package query maps stored entities into the shapes the API returns. Each
// view has its own pure mapping function so projections can be tested
// without a database.
package query

import (
	"time"

	"github.com/courtcms/courtcms/internal/database"
)

// UnassignedJudgeName is rendered whenever a case has no resolvable judge,
// whether the reference is null, dangling, or points at a deleted judge.
const UnassignedJudgeName = "Unassigned"

type CaseListItem struct {
	ID                int       `json:"id"`
	CaseNumber        string    `json:"caseNumber"`
	Title             string    `json:"title"`
	Status            string    `json:"status"`
	FilingDate        time.Time `json:"filingDate"`
	AssignedJudgeName string    `json:"assignedJudgeName"`
	AssignedJudgeID   *int      `json:"assignedJudgeId"`
}

type CaseDetail struct {
	ID                int             `json:"id"`
	CaseNumber        string          `json:"caseNumber"`
	Title             string          `json:"title"`
	Status            string          `json:"status"`
	FilingDate        time.Time       `json:"filingDate"`
	CreatedDate       time.Time       `json:"createdDate"`
	LastModifiedDate  *time.Time      `json:"lastModifiedDate"`
	AssignedJudgeName string          `json:"assignedJudgeName"`
	AssignedJudgeID   *int            `json:"assignedJudgeId"`
	Parties           []CasePartyView `json:"parties"`
	Hearings          []HearingView   `json:"hearings"`
}

type CasePartyView struct {
	PartyID  int    `json:"partyId"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type HearingView struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	HearingDate time.Time `json:"hearingDate"`
	Location    string    `json:"location"`
}

type PartyView struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type JudgeOption struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type JudgeView struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CourtRoom string `json:"courtRoom"`
	IsActive  bool   `json:"isActive"`
}

// JudgeDisplayName flattens a judge reference for case views.
func JudgeDisplayName(judge *database.Judge) string {
	if judge == nil {
		return UnassignedJudgeName
	}
	return judge.FirstName + " " + judge.LastName
}

func ToCaseListItem(c *database.CourtCase) CaseListItem {
	return CaseListItem{
		ID:                c.ID,
		CaseNumber:        c.CaseNumber,
		Title:             c.Title,
		Status:            c.Status,
		FilingDate:        c.FilingDate,
		AssignedJudgeName: JudgeDisplayName(c.AssignedJudge),
		AssignedJudgeID:   c.AssignedJudgeID,
	}
}

func ToCaseListItems(cases []database.CourtCase) []CaseListItem {
	items := make([]CaseListItem, 0, len(cases))
	for i := range cases {
		items = append(items, ToCaseListItem(&cases[i]))
	}
	return items
}

func ToCaseDetail(c *database.CourtCase) CaseDetail {
	parties := make([]CasePartyView, 0, len(c.CaseParties))
	for i := range c.CaseParties {
		parties = append(parties, ToCasePartyView(&c.CaseParties[i]))
	}

	hearings := make([]HearingView, 0, len(c.Hearings))
	for i := range c.Hearings {
		hearings = append(hearings, ToHearingView(&c.Hearings[i]))
	}

	return CaseDetail{
		ID:                c.ID,
		CaseNumber:        c.CaseNumber,
		Title:             c.Title,
		Status:            c.Status,
		FilingDate:        c.FilingDate,
		CreatedDate:       c.CreatedDate,
		LastModifiedDate:  c.LastModifiedDate,
		AssignedJudgeName: JudgeDisplayName(c.AssignedJudge),
		AssignedJudgeID:   c.AssignedJudgeID,
		Parties:           parties,
		Hearings:          hearings,
	}
}

func ToCasePartyView(link *database.CaseParty) CasePartyView {
	view := CasePartyView{
		PartyID: link.PartyID,
		Role:    link.Role,
	}
	if link.Party != nil {
		view.FullName = link.Party.FirstName + " " + link.Party.LastName
	}
	return view
}

func ToHearingView(h *database.Hearing) HearingView {
	return HearingView{
		ID:          h.ID,
		Description: h.Description,
		HearingDate: h.HearingDate,
		Location:    h.Location,
	}
}

func ToPartyView(p *database.Party) PartyView {
	return PartyView{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
	}
}

func ToPartyViews(parties []database.Party) []PartyView {
	views := make([]PartyView, 0, len(parties))
	for i := range parties {
		views = append(views, ToPartyView(&parties[i]))
	}
	return views
}

func ToJudgeOption(j *database.Judge) JudgeOption {
	return JudgeOption{
		ID:       j.ID,
		FullName: j.FirstName + " " + j.LastName,
	}
}

func ToJudgeOptions(judges []database.Judge) []JudgeOption {
	options := make([]JudgeOption, 0, len(judges))
	for i := range judges {
		options = append(options, ToJudgeOption(&judges[i]))
	}
	return options
}

func ToJudgeView(j *database.Judge) JudgeView {
	return JudgeView{
		ID:        j.ID,
		FirstName: j.FirstName,
		LastName:  j.LastName,
		CourtRoom: j.CourtRoom,
		IsActive:  j.IsActive,
	}
}
