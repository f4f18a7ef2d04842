package app_test

import (
	"testing"
	"time"

	"hotelpulse/internal/app"
	"hotelpulse/internal/domain"
)

func strp(s string) *string { return &s }

func centerEntry(center domain.ProfitCenter, amount string, roomCat, pkgType *string) domain.FinancialEntry {
	return domain.FinancialEntry{
		HotelID:      1,
		Type:         domain.EntryRevenue,
		ProfitCenter: center,
		RoomCategory: roomCat,
		PackageType:  pkgType,
		NetAmount:    dec(amount),
		OccurredAt:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildProfitBreakdown_Grouping(t *testing.T) {
	entries := []domain.FinancialEntry{
		centerEntry(domain.CenterRoom, "500", strp("suite"), nil),
		centerEntry(domain.CenterRoom, "300", strp("standard"), nil),
		centerEntry(domain.CenterRoom, "200", strp("suite"), nil),
		centerEntry(domain.CenterPackage, "150", nil, strp("spa")),
		centerEntry(domain.ProfitCenter("bar"), "90", nil, nil),
	}

	pb := app.BuildProfitBreakdown(entries)

	if len(pb.ByCenter) != 3 {
		t.Fatalf("centers: got %d want 3", len(pb.ByCenter))
	}
	// sorted descending by total: room 1000, package 150, bar 90
	if pb.ByCenter[0].Center != domain.CenterRoom || !pb.ByCenter[0].Total.Equal(dec("1000")) {
		t.Fatalf("top center: %+v", pb.ByCenter[0])
	}
	if pb.ByCenter[2].Center != domain.ProfitCenter("bar") {
		t.Fatalf("last center: %+v", pb.ByCenter[2])
	}

	if len(pb.ByRoom) != 2 {
		t.Fatalf("room rows: got %d want 2", len(pb.ByRoom))
	}
	if pb.ByRoom[0].Tag != "suite" || !pb.ByRoom[0].Total.Equal(dec("700")) {
		t.Fatalf("top room row: %+v", pb.ByRoom[0])
	}
}

func TestBuildProfitBreakdown_UnclassifiedBuckets(t *testing.T) {
	entries := []domain.FinancialEntry{
		centerEntry(domain.CenterRoom, "100", nil, nil),              // no room category
		centerEntry(domain.CenterRoom, "60", strp("other"), nil),     // a REAL category named "other"
		centerEntry(domain.CenterPackage, "40", nil, nil),            // no package type
		centerEntry(domain.CenterPackage, "30", nil, strp("standard")), // a REAL type named "standard"
	}

	pb := app.BuildProfitBreakdown(entries)

	var unclassifiedRoom, namedOther *app.TagTotal
	for i := range pb.ByRoom {
		if pb.ByRoom[i].Unclassified {
			unclassifiedRoom = &pb.ByRoom[i]
		} else if pb.ByRoom[i].Tag == "other" {
			namedOther = &pb.ByRoom[i]
		}
	}
	if unclassifiedRoom == nil || !unclassifiedRoom.Total.Equal(dec("100")) {
		t.Fatalf("missing unclassified room bucket: %+v", pb.ByRoom)
	}
	if unclassifiedRoom.Tag != "" {
		t.Fatalf("unclassified bucket must carry no tag, got %q", unclassifiedRoom.Tag)
	}
	if namedOther == nil || !namedOther.Total.Equal(dec("60")) {
		t.Fatalf("real category named other got merged away: %+v", pb.ByRoom)
	}

	var unclassifiedPkg *app.TagTotal
	for i := range pb.ByPackage {
		if pb.ByPackage[i].Unclassified {
			unclassifiedPkg = &pb.ByPackage[i]
		}
	}
	if unclassifiedPkg == nil || !unclassifiedPkg.Total.Equal(dec("40")) {
		t.Fatalf("missing unclassified package bucket: %+v", pb.ByPackage)
	}
}

func TestBuildProfitBreakdown_ExpensesIgnored(t *testing.T) {
	e := centerEntry(domain.CenterRoom, "999", strp("suite"), nil)
	e.Type = domain.EntryExpense
	pb := app.BuildProfitBreakdown([]domain.FinancialEntry{e})
	if len(pb.ByCenter) != 0 || len(pb.ByRoom) != 0 {
		t.Fatalf("expense entries must not appear: %+v", pb)
	}
}

func TestBuildProfitBreakdown_Deterministic(t *testing.T) {
	entries := []domain.FinancialEntry{
		centerEntry(domain.CenterRoom, "100", strp("a"), nil),
		centerEntry(domain.CenterRoom, "100", strp("b"), nil),
		centerEntry(domain.CenterRoom, "100", nil, nil),
	}
	first := app.BuildProfitBreakdown(entries)
	for i := 0; i < 10; i++ {
		again := app.BuildProfitBreakdown(entries)
		for j := range first.ByRoom {
			if first.ByRoom[j].Tag != again.ByRoom[j].Tag || first.ByRoom[j].Unclassified != again.ByRoom[j].Unclassified {
				t.Fatalf("ordering unstable: %+v vs %+v", first.ByRoom, again.ByRoom)
			}
		}
	}
	// equal totals: named tags alphabetical, unclassified last
	if first.ByRoom[0].Tag != "a" || first.ByRoom[1].Tag != "b" || !first.ByRoom[2].Unclassified {
		t.Fatalf("tie-break order wrong: %+v", first.ByRoom)
	}
}
