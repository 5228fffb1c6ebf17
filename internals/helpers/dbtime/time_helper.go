// file: internals/helpers/dbtime/time_helper.go
package dbtime

import "time"

// DateLayout = format tanggal ISO yang dipakai sebagai kunci presensi.
const DateLayout = "2006-01-02"

// Clock memberi "sekarang" di zona waktu sekolah. Now bisa diganti di test.
type Clock struct {
	Loc *time.Location
	Now func() time.Time
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{Loc: loc, Now: time.Now}
}

func (c Clock) current() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Loc
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}

// Stamp mengembalikan (tanggal "YYYY-MM-DD", jam "HH:MM") dari satu instant yang sama.
func (c Clock) Stamp() (string, string) {
	t := c.current()
	return t.Format(DateLayout), From(t).String()
}

// IsDate cek format "YYYY-MM-DD" yang valid secara kalender.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
