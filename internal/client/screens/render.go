package screens

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"
)

const (
	defaultWidth = 80
	dateLayout   = "2006-01-02"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// heading writes the title, the error or notice line, and a rule.
func heading(w io.Writer, title string, v *view, width int) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if v.errMsg != "" {
		if _, err := fmt.Fprintln(w, "error:", v.errMsg); err != nil {
			return err
		}
	}
	if v.notice != "" {
		if _, err := fmt.Fprintln(w, v.notice); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, strings.Repeat("-", min(width, len(title)+40)))
	return err
}

// truncate shortens s to n code points, marking the cut with "…".
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// wrap breaks text into lines of at most width code points on word
// boundaries. Words longer than width are kept whole.
func wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
		n     int
	)
	for _, word := range strings.Fields(text) {
		wl := utf8.RuneCountInString(word)
		if n > 0 && n+1+wl > width {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(word)
		n += wl
	}
	if n > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(dateLayout)
}

func formatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}
