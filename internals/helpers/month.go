// file: internals/helpers/month.go
package helper

import (
	"fmt"
	"regexp"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// CurrentMonth mengembalikan token bulan kalender berjalan (YYYY-MM).
func CurrentMonth() string {
	return time.Now().Format(MonthLayout)
}

// ValidMonth memeriksa token bulan YYYY-MM.
func ValidMonth(s string) bool {
	return monthRe.MatchString(s)
}

// MonthOfDate menurunkan YYYY-MM dari tanggal ISO (7 karakter pertama).
// Tanggal harus sudah tervalidasi sebagai YYYY-MM-DD.
func MonthOfDate(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

// ParseDate memvalidasi tanggal kalender ISO (menolak 2024-02-30 dsb).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("tanggal tidak valid: %s", s)
	}
	return t, nil
}

// MonthToken menyusun token YYYY-MM dari tahun + bulan (1..12).
func MonthToken(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
