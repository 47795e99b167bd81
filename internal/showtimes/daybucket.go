package showtimes

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

const eveningHour = 18

// Row is one screening line under a day header.
type Row struct {
	TheaterName    string   `json:"theater_name"`
	TheaterAddress string   `json:"theater_address"`
	TheaterMaps    string   `json:"theater_maps"`
	ShowtimeHour   string   `json:"showtime_hour"`
	Tickets        []string `json:"theater_tickets"`
}

// Day groups the kept screenings of one calendar day under a localized label.
type Day struct {
	Label string
	Rows  []Row
}

// BuildDays flattens aggregated records into day buckets, keeping only
// screenings a working subscriber can attend: weekday screenings from
// 18h00 onward, and anything on Saturday or Sunday. Days appear in the
// order their first kept screening was seen; timestamps that fail to
// parse are dropped.
func BuildDays(records []Record, locale string) []Day {
	loc := localeFor(locale)
	var days []Day
	index := map[string]int{}

	for _, rec := range records {
		for _, tv := range rec.Showtimes {
			t, ok := parseStartsAt(tv.StartsAt)
			if !ok {
				continue
			}
			if !keep(t) {
				continue
			}
			label := monday.Format(t, "Monday 2 January 2006", loc)
			i, seen := index[label]
			if !seen {
				days = append(days, Day{Label: label})
				i = len(days) - 1
				index[label] = i
			}
			days[i].Rows = append(days[i].Rows, Row{
				TheaterName:    rec.TheaterName,
				TheaterAddress: rec.TheaterAddress,
				TheaterMaps:    rec.TheaterMaps,
				ShowtimeHour:   t.Format("15h04"),
				Tickets:        rec.Tickets,
			})
		}
	}
	return days
}

func parseStartsAt(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func keep(t time.Time) bool {
	if t.Hour() >= eveningHour {
		return true
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func localeFor(locale string) monday.Locale {
	switch locale {
	case "en_US":
		return monday.LocaleEnUS
	case "en_GB":
		return monday.LocaleEnGB
	default:
		return monday.LocaleFrFR
	}
}
