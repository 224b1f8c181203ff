package query_test

import (
	"testing"
	"time"

	"github.com/courtcms/courtcms/internal/database"
	"github.com/courtcms/courtcms/internal/query"
)

func TestJudgeDisplayName(t *testing.T) {
	if got := query.JudgeDisplayName(nil); got != query.UnassignedJudgeName {
		t.Errorf("expected %q for a missing judge, got %q", query.UnassignedJudgeName, got)
	}

	judge := &database.Judge{FirstName: "Ann", LastName: "Lee"}
	if got := query.JudgeDisplayName(judge); got != "Ann Lee" {
		t.Errorf("expected \"Ann Lee\", got %q", got)
	}
}

func TestToCaseListItemUnassigned(t *testing.T) {
	c := database.CourtCase{
		AuditFields: database.AuditFields{ID: 7},
		CaseNumber:  "2025-CIV-010",
		Title:       "Roe v. Roe",
		Status:      "Open",
	}

	item := query.ToCaseListItem(&c)

	if item.AssignedJudgeName != query.UnassignedJudgeName {
		t.Errorf("expected %q, got %q", query.UnassignedJudgeName, item.AssignedJudgeName)
	}
	if item.AssignedJudgeID != nil {
		t.Error("expected nil judge id")
	}
	if item.ID != 7 || item.CaseNumber != "2025-CIV-010" {
		t.Error("identity fields must pass through")
	}
}

func TestToCaseDetail(t *testing.T) {
	judgeID := 3
	modified := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	c := database.CourtCase{
		AuditFields: database.AuditFields{
			ID:               7,
			CreatedDate:      time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
			LastModifiedDate: &modified,
		},
		CaseNumber:      "2025-CIV-010",
		Title:           "Roe v. Roe",
		Status:          "Closed",
		AssignedJudgeID: &judgeID,
		AssignedJudge:   &database.Judge{FirstName: "Ann", LastName: "Lee"},
		Hearings: []database.Hearing{
			{AuditFields: database.AuditFields{ID: 1}, Description: "Arraignment Hearing", Location: "Room 101"},
		},
		CaseParties: []database.CaseParty{
			{
				PartyID: 5,
				Role:    "Witness",
				Party:   &database.Party{AuditFields: database.AuditFields{ID: 5}, FirstName: "Max", LastName: "Vue"},
			},
		},
	}

	detail := query.ToCaseDetail(&c)

	if detail.AssignedJudgeName != "Ann Lee" {
		t.Errorf("expected \"Ann Lee\", got %q", detail.AssignedJudgeName)
	}
	if detail.LastModifiedDate == nil || !detail.LastModifiedDate.Equal(modified) {
		t.Error("modification timestamp must pass through")
	}
	if len(detail.Hearings) != 1 || detail.Hearings[0].Description != "Arraignment Hearing" {
		t.Error("hearings must be projected")
	}
	if len(detail.Parties) != 1 {
		t.Fatalf("expected 1 party view, got %d", len(detail.Parties))
	}
	party := detail.Parties[0]
	if party.PartyID != 5 || party.FullName != "Max Vue" || party.Role != "Witness" {
		t.Errorf("unexpected party view: %+v", party)
	}
}

func TestToCaseDetailEmptyCollections(t *testing.T) {
	detail := query.ToCaseDetail(&database.CourtCase{})

	// Empty lists must serialize as [], not null, for the front end.
	if detail.Parties == nil || detail.Hearings == nil {
		t.Error("empty collections must be non-nil slices")
	}
}

func TestToJudgeOptions(t *testing.T) {
	judges := []database.Judge{
		{AuditFields: database.AuditFields{ID: 1}, FirstName: "Judy", LastName: "Scheindlin"},
		{AuditFields: database.AuditFields{ID: 2}, FirstName: "Marilyn", LastName: "Milian"},
	}

	options := query.ToJudgeOptions(judges)

	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	if options[0].FullName != "Judy Scheindlin" || options[1].FullName != "Marilyn Milian" {
		t.Errorf("unexpected options: %+v", options)
	}
}

func TestToPartyView(t *testing.T) {
	party := database.Party{
		AuditFields: database.AuditFields{ID: 4},
		FirstName:   "Max",
		LastName:    "Vue",
		Email:       "max@x.com",
		Phone:       "555-0001",
	}

	view := query.ToPartyView(&party)

	if view.ID != 4 || view.Email != "max@x.com" || view.Phone != "555-0001" {
		t.Errorf("unexpected view: %+v", view)
	}
}
