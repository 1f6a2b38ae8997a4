package signals

import "time"

// festivalWindow is how far ahead the calendar looks for upcoming festivals.
const festivalWindow = 30 * 24 * time.Hour

type festival struct {
	name  string
	month time.Month
	day   int
}

// Major Indian shopping festivals. Lunar-calendar festivals shift year to
// year; these dates are the typical month used for seasonal planning, which
// is all the prompt context needs.
var festivalCalendar = []festival{
	{"Makar Sankranti", time.January, 14},
	{"Republic Day sales", time.January, 26},
	{"Holi", time.March, 14},
	{"Eid", time.March, 31},
	{"Raksha Bandhan", time.August, 9},
	{"Independence Day sales", time.August, 15},
	{"Ganesh Chaturthi", time.August, 27},
	{"Onam", time.September, 5},
	{"Navratri", time.September, 22},
	{"Dussehra", time.October, 2},
	{"Diwali", time.October, 20},
	{"Christmas", time.December, 25},
}

// upcomingFestivals returns festivals within the window after the given
// date, in calendar order. The lookup wraps across the year boundary.
func upcomingFestivals(at time.Time) []string {
	var names []string
	windowEnd := at.Add(festivalWindow)
	for _, f := range festivalCalendar {
		occurrence := time.Date(at.Year(), f.month, f.day, 0, 0, 0, 0, at.Location())
		if occurrence.Before(at) {
			occurrence = occurrence.AddDate(1, 0, 0)
		}
		if !occurrence.After(windowEnd) {
			names = append(names, f.name)
		}
	}
	return names
}
