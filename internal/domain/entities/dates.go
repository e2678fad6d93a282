package entities

import (
	"strings"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeCPF strips the usual punctuation from a CPF.
func NormalizeCPF(cpf string) string {
	r := strings.NewReplacer(".", "", "-", "", " ", "", "/", "")
	return r.Replace(strings.TrimSpace(cpf))
}
