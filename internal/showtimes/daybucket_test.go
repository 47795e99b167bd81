package showtimes

import "testing"

func record(starts ...string) Record {
	times := make([]TimeVersion, 0, len(starts))
	for _, s := range starts {
		times = append(times, TimeVersion{StartsAt: s, Version: "ORIGINAL"})
	}
	return Record{
		TheaterName:    "Le Rex",
		TheaterAddress: "1 bd Poissonnière 75002 Paris",
		TheaterMaps:    "https://maps.example/le-rex",
		Showtimes:      times,
		Tickets:        []string{"UGC"},
	}
}

func TestBuildDaysKeepsEveningsAndWeekends(t *testing.T) {
	records := []Record{record(
		"2024-05-06T17:59:00", // Monday before 18h, dropped
		"2024-05-06T18:00:00", // Monday at 18h, kept
		"2024-05-04T10:00:00", // Saturday morning, kept
		"2024-05-05T14:30:00", // Sunday afternoon, kept
	)}

	days := BuildDays(records, "fr_FR")
	if len(days) != 3 {
		t.Fatalf("days = %d, want 3", len(days))
	}
	total := 0
	for _, d := range days {
		total += len(d.Rows)
	}
	if total != 3 {
		t.Fatalf("rows = %d, want 3", total)
	}
}

func TestBuildDaysFrenchLabelsAndHours(t *testing.T) {
	days := BuildDays([]Record{record("2024-05-04T19:30:00")}, "fr_FR")
	if len(days) != 1 {
		t.Fatalf("days = %d, want 1", len(days))
	}
	if want := "samedi 4 mai 2024"; days[0].Label != want {
		t.Fatalf("label = %q, want %q", days[0].Label, want)
	}
	if got := days[0].Rows[0].ShowtimeHour; got != "19h30" {
		t.Fatalf("hour = %q, want %q", got, "19h30")
	}
}

func TestBuildDaysEnglishLocale(t *testing.T) {
	days := BuildDays([]Record{record("2024-05-04T19:30:00")}, "en_GB")
	if want := "Saturday 4 May 2024"; len(days) != 1 || days[0].Label != want {
		t.Fatalf("days = %+v, want label %q", days, want)
	}
}

func TestBuildDaysPreservesFirstSeenOrder(t *testing.T) {
	records := []Record{
		record("2024-05-05T20:00:00"),
		record("2024-05-04T20:00:00", "2024-05-05T22:00:00"),
	}
	days := BuildDays(records, "fr_FR")
	if len(days) != 2 {
		t.Fatalf("days = %d, want 2", len(days))
	}
	if days[0].Label != "dimanche 5 mai 2024" || days[1].Label != "samedi 4 mai 2024" {
		t.Fatalf("order = %q, %q", days[0].Label, days[1].Label)
	}
	if len(days[0].Rows) != 2 {
		t.Fatalf("first day rows = %d, want 2", len(days[0].Rows))
	}
}

func TestBuildDaysSkipsMalformedTimestamps(t *testing.T) {
	days := BuildDays([]Record{record("not-a-time", "2024-05-04T19:30")}, "fr_FR")
	if len(days) != 1 || len(days[0].Rows) != 1 {
		t.Fatalf("days = %+v", days)
	}
	if got := days[0].Rows[0].ShowtimeHour; got != "19h30" {
		t.Fatalf("hour = %q", got)
	}
}
