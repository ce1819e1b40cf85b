package heath

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/ini.v1"
)

// Project is a descriptor of something hours are booked on.
//
// Projects are immutable values owned by the Ledger registry; shifts keep a
// pointer to the registry entry.
type Project struct {
	Key    string // identifier used in month files
	Name   string // display name
	Report string // label used for external reporting
	AllDay bool   // an all-day project fills a whole day on its own
	Rate   Rate   // optional hourly rate
}

// Equal reports whether p and q hold the same values.
func (p Project) Equal(q Project) bool {
	return p.Key == q.Key && p.Name == q.Name && p.Report == q.Report && p.AllDay == q.AllDay && p.Rate.Equal(q.Rate)
}

// ParseProjects reads a projects file.
//
// Each INI section is a project whose key is the section name. Keys are case
// insensitive; "description" and "all_day" are accepted as older spellings of
// "Report" and "AllDay".
func ParseProjects(text string) ([]Project, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:         true,
		SkipUnrecognizableLines: false,
	}, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: projects: %v", ErrSyntax, err)
	}

	var projects []Project
	for _, sec := range cfg.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		p := Project{
			Key:    sec.Name(),
			Name:   sec.Key("name").String(),
			Report: firstKey(sec, "report", "description"),
		}
		if allDay := firstKey(sec, "allday", "all_day"); allDay != "" {
			b, err := parseBool(allDay)
			if err != nil {
				return nil, fmt.Errorf("%w: project %q: %v", ErrSyntax, p.Key, err)
			}
			p.AllDay = b
		}
		if rate := sec.Key("rate").String(); rate != "" {
			r, err := ParseRate(rate)
			if err != nil {
				return nil, fmt.Errorf("%w: project %q: %v", ErrSyntax, p.Key, err)
			}
			p.Rate = r
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// firstKey returns the value of the first key present in the section.
func firstKey(sec *ini.Section, names ...string) string {
	for _, n := range names {
		if sec.HasKey(n) {
			return sec.Key(n).String()
		}
	}
	return ""
}

// parseBool accepts the boolean spellings of INI files.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}

// EncodeProjects writes projects in the canonical projects file format.
func EncodeProjects(w io.Writer, projects []Project) error {
	for _, p := range projects {
		allDay := "False"
		if p.AllDay {
			allDay = "True"
		}
		if _, err := fmt.Fprintf(w, "[%s]\nName: %s\nReport: %s\nAllDay: %s\n", p.Key, p.Name, p.Report, allDay); err != nil {
			return err
		}
		if !p.Rate.IsZero() {
			if _, err := fmt.Fprintf(w, "Rate: %s\n", p.Rate); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
