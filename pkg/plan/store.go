package plan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store manages the plans kept in a single directory. Each plan is a flat
// text file of entries plus a status artifact holding the current entry
// index. Every operation re-reads both files; no state is cached between
// calls.
type Store struct {
	Dir string
}

// NewStore returns a Store over dir. The directory is expected to exist.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) textPath(name string) string {
	return filepath.Join(s.Dir, name)
}

func (s *Store) statusPath(name string) string {
	return filepath.Join(s.Dir, name+statusExt)
}

func clamp(low, val, high int) int {
	if val < low {
		return low
	}
	if val > high {
		return high
	}
	return val
}

func (s *Store) openText(name string) (*os.File, error) {
	path := s.textPath(name)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Plan: name}
		}
		return nil, fmt.Errorf("open plan file %s: %w", path, err)
	}
	return f, nil
}

// CountEntries returns the number of entries in the plan's text.
func (s *Store) CountEntries(name string) (int, error) {
	f, err := s.openText(name)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return NewScanner(f).Count()
}

// Next advances the plan to the following entry and returns the new index,
// saturating one past the last entry.
func (s *Store) Next(name string) (int, error) {
	return s.step(name, 1)
}

// Previous moves the plan back to the preceding entry and returns the new
// index, saturating at the first entry.
func (s *Store) Previous(name string) (int, error) {
	return s.step(name, -1)
}

func (s *Store) step(name string, delta int) (int, error) {
	entries, err := s.CountEntries(name)
	if err != nil {
		return 0, err
	}
	entry, err := s.Entry(name)
	if err != nil {
		return 0, err
	}
	next := clamp(1, entry+delta, entries+1)
	if err := s.SetEntry(name, next); err != nil {
		return 0, err
	}
	return next, nil
}

// Set moves the plan to the given entry, clamped to the valid range, and
// returns the index actually recorded. Any integer is accepted; values
// before the first entry clamp to 1 and values past the end clamp to one
// past the last entry.
func (s *Store) Set(name string, entry int) (int, error) {
	entries, err := s.CountEntries(name)
	if err != nil {
		return 0, err
	}
	next := clamp(1, entry, entries+1)
	if err := s.SetEntry(name, next); err != nil {
		return 0, err
	}
	return next, nil
}

// Show writes up to num entries to w, starting at the plan's current entry.
// The cursor is not changed.
func (s *Store) Show(w io.Writer, name string, num int) error {
	f, err := s.openText(name)
	if err != nil {
		return err
	}
	defer f.Close()
	entry, err := s.Entry(name)
	if err != nil {
		return err
	}

	sc := NewScanner(f)
	c, ok, err := sc.peek()
	if err != nil {
		return fmt.Errorf("read plan file %s: %w", s.textPath(name), err)
	}
	if !ok || !isBlank(c) {
		// The text starts on a title line (or is empty), so the first Skip
		// below would step past the current entry rather than find it. If
		// it starts mid-entry instead, Skip locates the first title line
		// itself and no adjustment is needed. Either way entry ends up
		// holding the number of Skip calls required.
		entry--
	} else if err := sc.advance(); err != nil {
		return fmt.Errorf("read plan file %s: %w", s.textPath(name), err)
	}
	for i := 0; i < entry; i++ {
		if _, err := sc.Skip(); err != nil {
			return fmt.Errorf("read plan file %s: %w", s.textPath(name), err)
		}
	}
	for i := 0; i < num; i++ {
		more, err := sc.Render(w)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

// Summary writes a one-line summary of the plan to w: either
// "name (end of plan)" when the cursor sits past the last entry, or
// "name (entry/entries): " followed by the current entry.
func (s *Store) Summary(w io.Writer, name string) error {
	entries, err := s.CountEntries(name)
	if err != nil {
		return err
	}
	entry, err := s.Entry(name)
	if err != nil {
		return err
	}
	if entry > entries {
		_, err := fmt.Fprintf(w, "%s (end of plan)\n", name)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s (%d/%d): ", name, entry, entries); err != nil {
		return err
	}
	return s.Show(w, name, 1)
}

// Plans lists the plan names in the store's directory, in the order the
// directory listing provides, skipping hidden files and status artifacts.
func (s *Store) Plans() ([]string, error) {
	files, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read plan directory %s: %w", s.Dir, err)
	}
	var names []string
	for _, f := range files {
		name := f.Name()
		if strings.HasPrefix(name, ".") || strings.HasSuffix(name, statusExt) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Add imports the file at path as a new plan and positions its cursor at the
// first entry. An empty name derives the plan name from the file's base
// name. An existing plan with the same name is overwritten.
func (s *Store) Add(path, name string) (string, error) {
	if name == "" {
		name = filepath.Base(path)
	}
	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input file %s: %w", path, err)
	}
	defer in.Close()

	dest := s.textPath(name)
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("create plan file %s: %w", dest, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("write plan file %s: %w", dest, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("write plan file %s: %w", dest, err)
	}

	if err := s.SetEntry(name, 1); err != nil {
		return "", err
	}
	return name, nil
}

// Delete removes the plan's text and status artifacts.
func (s *Store) Delete(name string) error {
	path := s.textPath(name)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Plan: name}
		}
		return fmt.Errorf("remove plan file %s: %w", path, err)
	}
	spath := s.statusPath(name)
	if err := os.Remove(spath); err != nil {
		return fmt.Errorf("remove plan status file %s: %w", spath, err)
	}
	return nil
}
