package heath

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"time"
)

// ProjectsFile is the name of the projects file in a ledger folder.
const ProjectsFile = "projects.cfg"

var (
	monthFilePattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})\.txt$`)
	yearFilePattern  = regexp.MustCompile(`^(\d{4})\.txt$`)
)

// MonthFile is a "YYYY-M.txt" file of a ledger folder.
type MonthFile struct {
	Path  string
	Year  int
	Month time.Month
}

// YearFile is a "YYYY.txt" file of a ledger folder.
type YearFile struct {
	Path string
	Year int
}

// FileDiagnostic is a skipped line in a month file.
type FileDiagnostic struct {
	File string
	Diagnostic
}

func (d FileDiagnostic) String() string { return filepath.Base(d.File) + ": " + d.Diagnostic.String() }

// Folder is a directory holding a ledger: month files, year files and the
// projects file.
type Folder struct {
	Path string
}

// Exists reports whether the folder is an existing directory.
func (f Folder) Exists() bool {
	info, err := os.Stat(f.Path)
	return err == nil && info.IsDir()
}

// MonthFiles returns the month files sorted by year and month.
func (f Folder) MonthFiles() ([]MonthFile, error) {
	entries, err := os.ReadDir(f.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger folder %q: %w", f.Path, err)
	}
	var files []MonthFile
	for _, e := range entries {
		match := monthFilePattern.FindStringSubmatch(e.Name())
		if e.IsDir() || match == nil {
			continue
		}
		y, _ := strconv.Atoi(match[1])
		m, _ := strconv.Atoi(match[2])
		if m < 1 || m > 12 {
			continue
		}
		files = append(files, MonthFile{Path: filepath.Join(f.Path, e.Name()), Year: y, Month: time.Month(m)})
	}
	slices.SortFunc(files, func(a, b MonthFile) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return int(a.Month) - int(b.Month)
	})
	return files, nil
}

// YearFiles returns the year files sorted by year.
func (f Folder) YearFiles() ([]YearFile, error) {
	entries, err := os.ReadDir(f.Path)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger folder %q: %w", f.Path, err)
	}
	var files []YearFile
	for _, e := range entries {
		match := yearFilePattern.FindStringSubmatch(e.Name())
		if e.IsDir() || match == nil {
			continue
		}
		y, _ := strconv.Atoi(match[1])
		files = append(files, YearFile{Path: filepath.Join(f.Path, e.Name()), Year: y})
	}
	slices.SortFunc(files, func(a, b YearFile) int { return a.Year - b.Year })
	return files, nil
}

// Valid reports whether the folder exists and its month files form a
// contiguous sequence. An empty folder is valid.
func (f Folder) Valid() bool {
	if !f.Exists() {
		return false
	}
	months, err := f.MonthFiles()
	if err != nil {
		return false
	}
	for i := 1; i < len(months); i++ {
		prev, cur := months[i-1], months[i]
		next := time.Date(prev.Year, prev.Month+1, 1, 0, 0, 0, 0, time.UTC)
		if cur.Year != next.Year() || cur.Month != next.Month() {
			return false
		}
	}
	return true
}

// Files returns the ledger files of the folder, relative to it.
func (f Folder) Files() ([]string, error) {
	var names []string
	if _, err := os.Stat(filepath.Join(f.Path, ProjectsFile)); err == nil {
		names = append(names, ProjectsFile)
	}
	years, err := f.YearFiles()
	if err != nil {
		return nil, err
	}
	for _, y := range years {
		names = append(names, filepath.Base(y.Path))
	}
	months, err := f.MonthFiles()
	if err != nil {
		return nil, err
	}
	for _, m := range months {
		names = append(names, filepath.Base(m.Path))
	}
	return names, nil
}

// Load reads the projects, the year files and the month files, in that order,
// into a new ledger.
func (f Folder) Load() (*Ledger, []FileDiagnostic, error) {
	if !f.Valid() {
		return nil, nil, fmt.Errorf("ledger folder %q not valid", f.Path)
	}
	l := NewLedger()

	projects, err := os.ReadFile(filepath.Join(f.Path, ProjectsFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, nil, fmt.Errorf("could not read projects file: %w", err)
	default:
		if err := l.LoadProjects(string(projects)); err != nil {
			return nil, nil, fmt.Errorf("could not decode projects file: %w", err)
		}
	}

	years, err := f.YearFiles()
	if err != nil {
		return nil, nil, err
	}
	for _, y := range years {
		if err := decodeFile(y.Path, func(file *os.File) error { return l.DecodeYear(y.Year, file) }); err != nil {
			return nil, nil, err
		}
	}

	months, err := f.MonthFiles()
	if err != nil {
		return nil, nil, err
	}
	var diags []FileDiagnostic
	for _, m := range months {
		err := decodeFile(m.Path, func(file *os.File) error {
			ds, err := l.DecodeMonth(m.Year, m.Month, file)
			for _, d := range ds {
				diags = append(diags, FileDiagnostic{File: m.Path, Diagnostic: d})
			}
			return err
		})
		if err != nil {
			return nil, diags, err
		}
	}
	return l, diags, nil
}

func decodeFile(path string, decode func(*os.File) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer file.Close()
	if err := decode(file); err != nil {
		return fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return nil
}

// MonthPath returns the file of the month (year, month): the existing one,
// or "YYYY-M.txt" in the folder.
func (f Folder) MonthPath(year int, month time.Month) string {
	if months, err := f.MonthFiles(); err == nil {
		for _, m := range months {
			if m.Year == year && m.Month == month {
				return m.Path
			}
		}
	}
	return filepath.Join(f.Path, fmt.Sprintf("%d-%d.txt", year, month))
}

// SaveMonth writes m to its month file when the content changed. It reports
// whether the file was written.
func (f Folder) SaveMonth(m *Month) (bool, error) {
	path := f.MonthPath(m.Year, m.Month)
	content := m.Serialize()
	if old, err := os.ReadFile(path); err == nil && string(old) == content {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("error writing month file %q: %w", path, err)
	}
	return true, nil
}

// SaveProjects writes the projects file in canonical form when the content
// changed. It reports whether the file was written.
func (f Folder) SaveProjects(projects []*Project) (bool, error) {
	values := make([]Project, len(projects))
	for i, p := range projects {
		values[i] = *p
	}
	var buf bytes.Buffer
	if err := EncodeProjects(&buf, values); err != nil {
		return false, err
	}
	path := filepath.Join(f.Path, ProjectsFile)
	if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, buf.Bytes()) {
		return false, nil
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return false, fmt.Errorf("error writing projects file %q: %w", path, err)
	}
	return true, nil
}
