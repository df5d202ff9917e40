package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the awsh logo in an orange-to-amber gradient.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"   __ ___      _____| |__  ", "#f97316"},
		{"  / _` \\ \\ /\\ / / __| '_ \\ ", "#fb923c"},
		{" | (_| |\\ V  V /\\__ \\ | | |", "#f59e0b"},
		{"  \\__,_| \\_/\\_/ |___/_| |_|", "#fbbf24"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
