package holidays

// federalTable lists the closure dates observed by the business. It must be
// extended every year; Coverage reports how far it reaches.
var federalTable = []Holiday{
	{"2025-01-01", "New Year's Day"},
	{"2025-01-20", "Martin Luther King Jr. Day"},
	{"2025-02-17", "Presidents' Day"},
	{"2025-05-26", "Memorial Day"},
	{"2025-07-04", "Independence Day"},
	{"2025-09-01", "Labor Day"},
	{"2025-11-27", "Thanksgiving Day"},
	{"2025-11-28", "Day after Thanksgiving"},
	{"2025-12-24", "Christmas Eve"},
	{"2025-12-25", "Christmas Day"},
	{"2025-12-31", "New Year's Eve"},

	{"2026-01-01", "New Year's Day"},
	{"2026-01-19", "Martin Luther King Jr. Day"},
	{"2026-02-16", "Presidents' Day"},
	{"2026-05-25", "Memorial Day"},
	{"2026-07-04", "Independence Day"},
	{"2026-09-07", "Labor Day"},
	{"2026-11-26", "Thanksgiving Day"},
	{"2026-11-27", "Day after Thanksgiving"},
	{"2026-12-24", "Christmas Eve"},
	{"2026-12-25", "Christmas Day"},
	{"2026-12-31", "New Year's Eve"},

	{"2027-01-01", "New Year's Day"},
	{"2027-01-18", "Martin Luther King Jr. Day"},
	{"2027-02-15", "Presidents' Day"},
	{"2027-05-31", "Memorial Day"},
	{"2027-07-04", "Independence Day"},
	{"2027-09-06", "Labor Day"},
	{"2027-11-25", "Thanksgiving Day"},
	{"2027-11-26", "Day after Thanksgiving"},
	{"2027-12-24", "Christmas Eve"},
	{"2027-12-25", "Christmas Day"},
	{"2027-12-31", "New Year's Eve"},

	{"2028-01-01", "New Year's Day"},
	{"2028-01-17", "Martin Luther King Jr. Day"},
	{"2028-02-21", "Presidents' Day"},
	{"2028-05-29", "Memorial Day"},
	{"2028-07-04", "Independence Day"},
	{"2028-09-04", "Labor Day"},
	{"2028-11-23", "Thanksgiving Day"},
	{"2028-11-24", "Day after Thanksgiving"},
	{"2028-12-24", "Christmas Eve"},
	{"2028-12-25", "Christmas Day"},
	{"2028-12-31", "New Year's Eve"},
}

var federal = mustSet(federalTable)

// Federal returns the built-in holiday table. The returned set is shared and
// must not be modified.
func Federal() *Set {
	return federal
}
