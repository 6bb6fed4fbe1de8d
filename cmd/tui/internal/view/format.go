package view

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
)

const dbTimeout = 5 * time.Second

// DbCtx returns a context with a standard timeout for store operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatAgo renders t relative to now, e.g. "3 minutes ago".
func FormatAgo(t time.Time) string {
	if time.Since(t) < time.Minute {
		return "just now"
	}

	return humanize.Time(t)
}

func FormatKM(km int) string {
	return humanize.Comma(int64(km)) + " km"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}
