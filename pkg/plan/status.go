package plan

import (
	"fmt"
	"os"
	"strconv"
)

// statusExt is the suffix of the status artifact kept alongside each plan's
// text.
const statusExt = ".status"

// maxStatusLen caps the status artifact size. Content beyond the cap is
// rejected as corrupt rather than truncated.
const maxStatusLen = 32

// Entry returns the current entry index recorded for the plan. The index is
// 1-based; a value one past the entry count means the plan is finished.
func (s *Store) Entry(name string) (int, error) {
	path := s.statusPath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, &NotFoundError{Plan: name, Status: true}
		}
		return 0, fmt.Errorf("read plan status file %s: %w", path, err)
	}
	if len(data) > maxStatusLen {
		return 0, &CorruptError{Path: path, Reason: "too long"}
	}
	entry, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, &CorruptError{Path: path, Reason: "expected number"}
	}
	return entry, nil
}

// SetEntry records entry as the plan's current entry, overwriting the status
// artifact with its bare decimal representation. It does not check that
// entry lies within the plan's bounds; navigation operations clamp before
// calling it.
func (s *Store) SetEntry(name string, entry int) error {
	path := s.statusPath(name)
	if err := os.WriteFile(path, []byte(strconv.Itoa(entry)), 0644); err != nil {
		return fmt.Errorf("write plan status file %s: %w", path, err)
	}
	return nil
}
