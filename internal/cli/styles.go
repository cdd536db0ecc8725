// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#A40000")
	accentColor  = lipgloss.Color("#FFA500")
	successColor = lipgloss.Color("#00AA00")
	mutedColor   = lipgloss.Color("#888888")
	textColor    = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)
)

// PrintVersion prints version information
func PrintVersion(w io.Writer, name, version string) {
	fmt.Fprintln(w, TitleStyle.Render(name))
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints a key/value line
func PrintInfo(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// PrintSection prints a section header
func PrintSection(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, HeaderStyle.Render(title))
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// FormatBytes formats bytes into human-readable format
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatSamples renders samples as a bracketed list, with an ellipsis when
// more than shown exist.
func FormatSamples(samples []int16, total int) string {
	parts := make([]string, len(samples))
	for i, s := range samples {
		parts[i] = fmt.Sprint(s)
	}

	out := "[" + strings.Join(parts, " ")
	if total > len(samples) {
		out += " …"
	}
	return out + "]"
}
