package financas

import "time"

// day parses a fixed instant for tests, at midnight UTC.
func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// days shifts an instant by whole days.
func days(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) }
