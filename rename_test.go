package renamify

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
)

// mapMeta resolves titles by base name, standing in for real metadata.
type mapMeta map[string]string

func (m mapMeta) Title(path string) (string, error) {
	if title, ok := m[filepath.Base(path)]; ok {
		return title, nil
	}
	return "", ErrTitleNotFound
}

func newTestRenamer(meta MetadataReader, dryRun bool) *Renamer {
	log, _ := test.NewNullLogger()
	inferrer := NewTitleInferrer(meta, &fakeSpans{}, DefaultJournalKeywords, log)
	return NewRenamer(inferrer, dryRun, log)
}

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestNextFreeName(t *testing.T) {
	used := map[string]bool{}

	if got := nextFreeName("Foo", used); got != "Foo.pdf" {
		t.Errorf("nextFreeName() = %q, want %q", got, "Foo.pdf")
	}
	used["Foo.pdf"] = true
	if got := nextFreeName("Foo", used); got != "Foo (1).pdf" {
		t.Errorf("nextFreeName() = %q, want %q", got, "Foo (1).pdf")
	}
	used["Foo (1).pdf"] = true
	if got := nextFreeName("Foo", used); got != "Foo (2).pdf" {
		t.Errorf("nextFreeName() = %q, want %q", got, "Foo (2).pdf")
	}
}

func TestRenameFolderCollisions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pdf")
	writeFile(t, dir, "b.pdf")
	writeFile(t, dir, "c.pdf")

	meta := mapMeta{"a.pdf": "Foo", "b.pdf": "Foo", "c.pdf": "Foo"}
	if err := newTestRenamer(meta, false).RenameFolder(dir); err != nil {
		t.Fatalf("RenameFolder() error = %v", err)
	}

	got := dirNames(t, dir)
	want := []string{"Foo (1).pdf", "Foo (2).pdf", "Foo.pdf"}
	if len(got) != len(want) {
		t.Fatalf("dir contents = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dir contents = %v, want %v", got, want)
			break
		}
	}
}

func TestRenameFolderSkipsUntitled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "untitled.pdf")
	writeFile(t, dir, "titled.pdf")
	writeFile(t, dir, "notes.txt")

	meta := mapMeta{"titled.pdf": "A Study of Widgets"}
	if err := newTestRenamer(meta, false).RenameFolder(dir); err != nil {
		t.Fatalf("RenameFolder() error = %v", err)
	}

	got := dirNames(t, dir)
	want := []string{"A Study of Widgets.pdf", "notes.txt", "untitled.pdf"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dir contents = %v, want %v", got, want)
		}
	}
}

func TestRenameFolderSkipsUnsanitizableTitle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "weird.pdf")

	meta := mapMeta{"weird.pdf": " \t "}
	if err := newTestRenamer(meta, false).RenameFolder(dir); err != nil {
		t.Fatalf("RenameFolder() error = %v", err)
	}
	got := dirNames(t, dir)
	if len(got) != 1 || got[0] != "weird.pdf" {
		t.Errorf("dir contents = %v, want [weird.pdf]", got)
	}
}

func TestRenameFolderDryRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pdf")

	meta := mapMeta{"a.pdf": "Foo"}
	if err := newTestRenamer(meta, true).RenameFolder(dir); err != nil {
		t.Fatalf("RenameFolder() error = %v", err)
	}
	got := dirNames(t, dir)
	if len(got) != 1 || got[0] != "a.pdf" {
		t.Errorf("dir contents = %v, want [a.pdf]", got)
	}
}

func TestRenameFolderAlreadyNamed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Foo.pdf")
	writeFile(t, dir, "other.pdf")

	meta := mapMeta{"Foo.pdf": "Foo", "other.pdf": "Foo"}
	if err := newTestRenamer(meta, false).RenameFolder(dir); err != nil {
		t.Fatalf("RenameFolder() error = %v", err)
	}

	got := dirNames(t, dir)
	want := []string{"Foo (1).pdf", "Foo.pdf"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("dir contents = %v, want %v", got, want)
		}
	}
}

func TestUniqueFilename(t *testing.T) {
	dir := t.TempDir()
	rn := newTestRenamer(mapMeta{}, false)

	if got := rn.UniqueFilename(dir, "Foo", "pdf"); got != "Foo.pdf" {
		t.Errorf("UniqueFilename() = %q, want %q", got, "Foo.pdf")
	}

	writeFile(t, dir, "Foo.pdf")
	if got := rn.UniqueFilename(dir, "Foo", "pdf"); got != "Foo (1).pdf" {
		t.Errorf("UniqueFilename() = %q, want %q", got, "Foo (1).pdf")
	}

	writeFile(t, dir, "Foo (1).pdf")
	if got := rn.UniqueFilename(dir, "Foo", "pdf"); got != "Foo (2).pdf" {
		t.Errorf("UniqueFilename() = %q, want %q", got, "Foo (2).pdf")
	}
}

func TestUniqueFilenameIgnoresInRunState(t *testing.T) {
	// The on-disk probe is its own collision domain; names assigned only
	// in memory must not influence it.
	dir := t.TempDir()
	rn := newTestRenamer(mapMeta{}, false)

	if got := rn.UniqueFilename(dir, "Bar", "pdf"); got != "Bar.pdf" {
		t.Errorf("UniqueFilename() = %q, want %q", got, "Bar.pdf")
	}
	if got := rn.UniqueFilename(dir, "Bar", "pdf"); got != "Bar.pdf" {
		t.Errorf("repeated UniqueFilename() = %q, want %q", got, "Bar.pdf")
	}
}
