package ui

import (
	"fmt"
	"io"
	"strings"
)

// Panel draws lines inside the theme's frame.
func Panel(w io.Writer, t Theme, lines []string) error {
	_, err := fmt.Fprintln(w, t.FrameStyle().Render(strings.Join(lines, "\n")))
	return err
}

// RowLines renders numbered rows, 0-based to match the indices `mv` and `drag` take.
func RowLines(t Theme, rows []string) []string {
	if len(rows) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	width := len(fmt.Sprint(len(rows) - 1))
	out := make([]string, 0, len(rows))
	for i, text := range rows {
		idx := fmt.Sprintf("%*d", width, i)
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), t.Muted.Render(t.Grip), text))
	}
	return out
}

func OK(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Success.Render(t.Check+" "+msg))
}

func Fail(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Error.Render(t.Cross+" "+msg))
}
