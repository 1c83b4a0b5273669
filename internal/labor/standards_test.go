package labor

import (
	"testing"
	"time"

	"careme/internal/models"
)

func serverStandards() []models.StandardRule {
	return []models.StandardRule{
		{Position: "Server", BandLow: 0, BandHigh: 50, Required: 2},
		{Position: "Server", BandLow: 51, BandHigh: 100, Required: 4},
		{Position: "Server", BandLow: 101, BandHigh: 150, Required: 6},
		{Position: "Bartender", BandLow: 0, BandHigh: 50, Required: 1},
		{Position: "Bartender", BandLow: 51, BandHigh: 100, Required: 1},
	}
}

func TestBuildBands(t *testing.T) {
	bands := BuildBands(50, 650)

	if len(bands) == 0 {
		t.Fatal("BuildBands() returned no bands")
	}
	if bands[0].Low != 0 || bands[0].High != 50 {
		t.Errorf("first band = [%d,%d], want [0,50]", bands[0].Low, bands[0].High)
	}
	if bands[1].Low != 51 || bands[1].High != 100 {
		t.Errorf("second band = [%d,%d], want [51,100]", bands[1].Low, bands[1].High)
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Low != bands[i-1].High+1 {
			t.Errorf("band %d starts at %d, leaving a gap after %d", i, bands[i].Low, bands[i-1].High)
		}
	}
	last := bands[len(bands)-1]
	if last.Low > 650 {
		t.Errorf("last band starts past max covers: %d", last.Low)
	}
}

func TestRequiredForLocatesBand(t *testing.T) {
	rules := serverStandards()

	if got := RequiredFor("Server", 75, rules); got != 4 {
		t.Errorf("RequiredFor(Server, 75) = %d, want 4", got)
	}
	if got := RequiredFor("Server", 50, rules); got != 2 {
		t.Errorf("RequiredFor(Server, 50) = %d, want 2", got)
	}
	if got := RequiredFor("Server", 51, rules); got != 4 {
		t.Errorf("RequiredFor(Server, 51) = %d, want 4", got)
	}
	if got := RequiredFor("Bartender", 75, rules); got != 1 {
		t.Errorf("RequiredFor(Bartender, 75) = %d, want 1", got)
	}
}

func TestRequiredForUndeclaredDefaultsToZero(t *testing.T) {
	rules := serverStandards()

	if got := RequiredFor("Sommelier", 75, rules); got != 0 {
		t.Errorf("undeclared position = %d, want 0", got)
	}
	if got := RequiredFor("Server", 9000, rules); got != 0 {
		t.Errorf("covers past the declared bands = %d, want 0", got)
	}
}

func TestRequiredForMonotonicWhenTableIs(t *testing.T) {
	rules := serverStandards()[:3] // Server counts rise 2, 4, 6

	prev := 0
	for covers := 0; covers <= 150; covers++ {
		got := RequiredFor("Server", covers, rules)
		if got < prev {
			t.Fatalf("RequiredFor(Server, %d) = %d, dropped below %d", covers, got, prev)
		}
		prev = got
	}
}

func TestCompareScheduleToStandard(t *testing.T) {
	day := time.Date(2026, time.May, 9, 0, 0, 0, 0, time.UTC)
	shifts := []models.ShiftRow{
		{EmployeeID: "e1", Date: day, Start: "16:00", End: "23:00", Position: "Server"},
		{EmployeeID: "e2", Date: day, Start: "16:00", End: "23:00", Position: "Server"},
		{EmployeeID: "e2", Date: day, Start: "10:00", End: "14:00", Position: "Server"}, // double shift, same head
		{EmployeeID: "e3", Date: day, Start: "16:00", End: "23:00", Position: "Bartender"},
		{EmployeeID: "e4", Date: day, Start: "16:00", End: "23:00", Position: "Server", LeaveType: "pto"},
	}
	forecast := []CoversForecast{{Date: day, Covers: 75}}

	cells := CompareScheduleToStandard(shifts, serverStandards(), forecast)

	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2 (one per position)", len(cells))
	}

	// Sorted by position: Bartender, then Server
	if cells[0].Position != "Bartender" || cells[0].Required != 1 || cells[0].Scheduled != 1 || cells[0].Variance != 0 {
		t.Errorf("bartender cell = %+v", cells[0])
	}
	if cells[1].Position != "Server" || cells[1].Required != 4 || cells[1].Scheduled != 2 {
		t.Errorf("server cell = %+v", cells[1])
	}
	if cells[1].Variance != -2 {
		t.Errorf("server variance = %d, want -2 (understaffed)", cells[1].Variance)
	}
}
