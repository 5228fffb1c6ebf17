// file: internals/helpers/dbtime/tod.go
package dbtime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Tod = penanda jam presensi dengan granularitas menit ("HH:MM").
type Tod struct {
	Hour   int
	Minute int
}

// From: ambil jam & menit dari t (zona t dipertahankan).
func From(t time.Time) Tod {
	return Tod{Hour: t.Hour(), Minute: t.Minute()}
}

// Parse menerima "H", "HH", "H:M", "HH:MM" atau "HH:MM:SS" (detik dibuang).
func Parse(s string) (Tod, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Tod{}, fmt.Errorf("tod: empty")
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Tod{}, fmt.Errorf("tod: invalid %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return Tod{}, fmt.Errorf("tod: invalid hour in %q", s)
	}
	m := 0
	if len(parts) >= 2 {
		m, err = strconv.Atoi(parts[1])
		if err != nil || m < 0 || m > 59 {
			return Tod{}, fmt.Errorf("tod: invalid minute in %q", s)
		}
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || sec < 0 || sec > 59 {
			return Tod{}, fmt.Errorf("tod: invalid second in %q", s)
		}
	}
	return Tod{Hour: h, Minute: m}, nil
}

// Normalize: string bebas → "HH:MM".
func Normalize(s string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

func (t Tod) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// Minutes sejak tengah malam, dipakai untuk urutan.
func (t Tod) Minutes() int { return t.Hour*60 + t.Minute }
