package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"maraos/internal/profile"
)

// Run launches an interactive form editing profile.yaml: the agent id,
// display name and clearance level the console checks locks against.
func Run() error {
	current, err := profile.Load()
	if err != nil {
		return err
	}

	id := current.ID
	username := current.Username
	level := ""
	if n, ok := current.Level(); ok {
		level = strconv.Itoa(n)
	}

	green := lipgloss.Color("#00ff00")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Agent profile").Description("Leave the id empty to browse anonymously."),
			huh.NewInput().Title("Agent id").Value(&id),
			huh.NewInput().Title("Username").Value(&username),
			huh.NewInput().Title("Clearance level").Value(&level).Validate(ValidateLevel),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	next, err := Apply(current, id, username, level)
	if err != nil {
		return err
	}
	if err := profile.Save(next); err != nil {
		return err
	}
	p, _ := profile.Path()
	fmt.Printf("\n✓ profile saved: %s\n\n", p)
	return nil
}

// ValidateLevel accepts an empty string or a non-negative integer.
func ValidateLevel(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("clearance level must be a number")
	}
	if n < 0 {
		return errors.New("clearance level cannot be negative")
	}
	return nil
}

// Apply builds the profile the form describes.
func Apply(p profile.Profile, id, username, level string) (profile.Profile, error) {
	if err := ValidateLevel(level); err != nil {
		return p, err
	}
	p.ID = strings.TrimSpace(id)
	p.Username = strings.TrimSpace(username)
	p.ClearanceLevel = nil
	if s := strings.TrimSpace(level); s != "" {
		n, _ := strconv.Atoi(s)
		p = p.WithLevel(n)
	}
	return p, nil
}
