package plan

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writePlan drops a plan text and status artifact directly into the store's
// directory.
func writePlan(t *testing.T, st *Store, name, text, status string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(st.Dir, name), []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(st.Dir, name+".status"), []byte(status), 0644); err != nil {
		t.Fatal(err)
	}
}

func showString(t *testing.T, st *Store, name string, num int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := st.Show(&buf, name, num); err != nil {
		t.Fatalf("Show(%s, %d) error = %v", name, num, err)
	}
	return buf.String()
}

func summaryString(t *testing.T, st *Store, name string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := st.Summary(&buf, name); err != nil {
		t.Fatalf("Summary(%s) error = %v", name, err)
	}
	return buf.String()
}

func TestStoreReadingFlow(t *testing.T) {
	st := NewStore(t.TempDir())
	writePlan(t, st, "books", "Book A\n  by X\nBook B\n", "1")

	entries, err := st.CountEntries("books")
	if err != nil {
		t.Fatal(err)
	}
	if entries != 2 {
		t.Fatalf("CountEntries() = %d, want 2", entries)
	}

	if got, want := showString(t, st, "books", 1), "Book A\n\tby X\n"; got != want {
		t.Errorf("Show(1) = %q, want %q", got, want)
	}

	entry, err := st.Next("books")
	if err != nil {
		t.Fatal(err)
	}
	if entry != 2 {
		t.Fatalf("Next() = %d, want 2", entry)
	}
	if got, want := summaryString(t, st, "books"), "books (2/2): Book B\n"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}

	entry, err = st.Next("books")
	if err != nil {
		t.Fatal(err)
	}
	if entry != 3 {
		t.Fatalf("Next() = %d, want 3", entry)
	}
	if got, want := summaryString(t, st, "books"), "books (end of plan)\n"; got != want {
		t.Errorf("Summary() past the end = %q, want %q", got, want)
	}
}

func TestStoreClamping(t *testing.T) {
	st := NewStore(t.TempDir())
	writePlan(t, st, "p", "A\nB\n", "1")

	// Repeated Previous at the start stays at 1.
	for i := 0; i < 3; i++ {
		entry, err := st.Previous("p")
		if err != nil {
			t.Fatal(err)
		}
		if entry != 1 {
			t.Fatalf("Previous() at start = %d, want 1", entry)
		}
	}

	// Jumps clamp to the nearest bound.
	entry, err := st.Set("p", -100)
	if err != nil {
		t.Fatal(err)
	}
	if entry != 1 {
		t.Errorf("Set(-100) = %d, want 1", entry)
	}
	entry, err = st.Set("p", 100000)
	if err != nil {
		t.Fatal(err)
	}
	if entry != 3 {
		t.Errorf("Set(100000) = %d, want 3", entry)
	}

	// Repeated Next past the end stays at N+1.
	for i := 0; i < 3; i++ {
		entry, err := st.Next("p")
		if err != nil {
			t.Fatal(err)
		}
		if entry != 3 {
			t.Fatalf("Next() past end = %d, want 3", entry)
		}
	}
}

func TestStoreEmptyPlan(t *testing.T) {
	st := NewStore(t.TempDir())
	writePlan(t, st, "empty", "", "1")

	entries, err := st.CountEntries("empty")
	if err != nil {
		t.Fatal(err)
	}
	if entries != 0 {
		t.Fatalf("CountEntries() = %d, want 0", entries)
	}

	// Cursor 1 equals N+1, so the plan is at its end.
	if got, want := summaryString(t, st, "empty"), "empty (end of plan)\n"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}

	// Navigation keeps the cursor pinned to the only valid value.
	entry, err := st.Next("empty")
	if err != nil {
		t.Fatal(err)
	}
	if entry != 1 {
		t.Errorf("Next() = %d, want 1", entry)
	}
	entry, err = st.Previous("empty")
	if err != nil {
		t.Fatal(err)
	}
	if entry != 1 {
		t.Errorf("Previous() = %d, want 1", entry)
	}
}

func TestStoreShowCompensation(t *testing.T) {
	// The text does not start on a title line; Show must still begin at the
	// entry the cursor names, counting from the first real title line.
	st := NewStore(t.TempDir())
	writePlan(t, st, "p", "  stray indented line\nReal A\n  da\nReal B\n", "1")

	if got, want := showString(t, st, "p", 1), "Real A\n\tda\n"; got != want {
		t.Errorf("Show(1) = %q, want %q", got, want)
	}

	if _, err := st.Next("p"); err != nil {
		t.Fatal(err)
	}
	if got, want := showString(t, st, "p", 1), "Real B\n"; got != want {
		t.Errorf("Show(1) after Next() = %q, want %q", got, want)
	}
}

func TestStoreShowDoesNotMutate(t *testing.T) {
	st := NewStore(t.TempDir())
	writePlan(t, st, "p", "A\nB\nC\n", "2")

	showString(t, st, "p", 2)

	data, err := os.ReadFile(filepath.Join(st.Dir, "p.status"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2" {
		t.Errorf("status after Show = %q, want %q", data, "2")
	}
}

func TestStoreShowCount(t *testing.T) {
	st := NewStore(t.TempDir())
	writePlan(t, st, "p", "A\n  da\nB\nC\n", "1")

	if got, want := showString(t, st, "p", 2), "A\n\tda\nB\n"; got != want {
		t.Errorf("Show(2) = %q, want %q", got, want)
	}

	// Asking past the end stops early.
	if got, want := showString(t, st, "p", 10), "A\n\tda\nB\nC\n"; got != want {
		t.Errorf("Show(10) = %q, want %q", got, want)
	}
}

func TestStoreMissingPlan(t *testing.T) {
	st := NewStore(t.TempDir())

	_, err := st.Next("ghost")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Next() error = %v, want NotFoundError", err)
	}
	if want := "plan 'ghost' does not exist"; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestStoreCorruptStatusBlocksNavigation(t *testing.T) {
	st := NewStore(t.TempDir())
	writePlan(t, st, "p", "A\nB\n", "12x")

	_, err := st.Next("p")
	var corrupt *CorruptError
	if !errors.As(err, &corrupt) {
		t.Fatalf("Next() error = %v, want CorruptError", err)
	}

	// The failed navigation must not have touched the artifact.
	data, err := os.ReadFile(filepath.Join(st.Dir, "p.status"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "12x" {
		t.Errorf("status after failed Next = %q, want %q", data, "12x")
	}

	var buf bytes.Buffer
	if err := st.Show(&buf, "p", 1); !errors.As(err, &corrupt) {
		t.Errorf("Show() error = %v, want CorruptError", err)
	}
	if err := st.Summary(&buf, "p"); !errors.As(err, &corrupt) {
		t.Errorf("Summary() error = %v, want CorruptError", err)
	}
}

func TestStorePlans(t *testing.T) {
	st := NewStore(t.TempDir())
	writePlan(t, st, "alpha", "A\n", "1")
	writePlan(t, st, "beta", "B\n", "1")
	if err := os.WriteFile(filepath.Join(st.Dir, ".hidden"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	names, err := st.Plans()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("Plans() = %v, want [alpha beta]", names)
	}
}

func TestStoreAddDelete(t *testing.T) {
	st := NewStore(t.TempDir())

	src := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(src, []byte("Book A\n  by X\nBook B\n"), 0644); err != nil {
		t.Fatal(err)
	}

	name, err := st.Add(src, "")
	if err != nil {
		t.Fatal(err)
	}
	if name != "list.txt" {
		t.Errorf("Add() name = %q, want %q", name, "list.txt")
	}

	entry, err := st.Entry(name)
	if err != nil {
		t.Fatal(err)
	}
	if entry != 1 {
		t.Errorf("fresh plan cursor = %d, want 1", entry)
	}
	data, err := os.ReadFile(filepath.Join(st.Dir, name))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Book A\n  by X\nBook B\n" {
		t.Errorf("plan text = %q, want the source content", data)
	}

	// Explicit name.
	name, err = st.Add(src, "books")
	if err != nil {
		t.Fatal(err)
	}
	if name != "books" {
		t.Errorf("Add() name = %q, want %q", name, "books")
	}

	if err := st.Delete("books"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(st.Dir, "books")); !os.IsNotExist(err) {
		t.Error("plan text still present after Delete")
	}
	if _, err := os.Stat(filepath.Join(st.Dir, "books.status")); !os.IsNotExist(err) {
		t.Error("plan status still present after Delete")
	}

	var nf *NotFoundError
	if err := st.Delete("books"); !errors.As(err, &nf) {
		t.Errorf("Delete() of a missing plan = %v, want NotFoundError", err)
	}
}
