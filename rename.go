package renamify

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// Renamer renames every PDF in a directory after its inferred title. One
// bad document never stops the rest of the batch.
type Renamer struct {
	inferrer *TitleInferrer
	log      *logrus.Logger
	dryRun   bool
}

func NewRenamer(inferrer *TitleInferrer, dryRun bool, log *logrus.Logger) *Renamer {
	return &Renamer{
		inferrer: inferrer,
		log:      log,
		dryRun:   dryRun,
	}
}

// RenameFolder processes every .pdf entry of dir in directory-listing
// order. Files without an inferrable title are skipped. The returned error
// aggregates the per-file failures; a non-nil result still means the batch
// ran to completion.
func (rn *Renamer) RenameFolder(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, "RenameFolder failed")
	}

	used := make(map[string]bool)
	var errs error
	for _, entry := range entries {
		if entry.IsDir() || !IsPDF(entry.Name()) {
			continue
		}
		if err := rn.renameOne(dir, entry.Name(), used); err != nil {
			rn.log.WithField("file", entry.Name()).Error(err)
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func (rn *Renamer) renameOne(dir, filename string, used map[string]bool) error {
	rn.log.WithField("file", filename).Info("Processing file.")

	title := rn.inferrer.InferTitle(filepath.Join(dir, filename))
	if title == "" {
		rn.log.WithField("file", filename).Warn("No title could be inferred. Skipping.")
		return nil
	}

	base := SanitizeFilename(title)
	if base == "" {
		rn.log.WithField("file", filename).Warn("Title sanitized to nothing. Skipping.")
		return nil
	}

	newName := nextFreeName(base, used)
	used[newName] = true

	if newName == filename {
		rn.log.WithField("file", filename).Info("Already named after its title.")
		return nil
	}
	if rn.dryRun {
		rn.log.WithFields(logrus.Fields{
			"from": filename,
			"to":   newName,
		}).Info("Dry run, rename skipped.")
		return nil
	}

	if err := os.Rename(filepath.Join(dir, filename), filepath.Join(dir, newName)); err != nil {
		return errors.Wrap(err, "rename failed")
	}
	rn.log.WithFields(logrus.Fields{
		"from": filename,
		"to":   newName,
	}).Info("File renamed.")
	return nil
}

// nextFreeName picks the first of "base.pdf", "base (1).pdf", ... not yet
// assigned during this run.
func nextFreeName(base string, used map[string]bool) string {
	name := base + ".pdf"
	for counter := 1; used[name]; counter++ {
		name = fmt.Sprintf("%s (%d).pdf", base, counter)
	}
	return name
}

// UniqueFilename probes dir for the first free "base.ext" name, appending
// " (1)", " (2)", ... as needed. Collisions are resolved against the
// on-disk state only, never against an in-flight batch.
func (rn *Renamer) UniqueFilename(dir, base, ext string) string {
	newName := fmt.Sprintf("%s.%s", base, ext)
	if info, err := os.Stat(filepath.Join(dir, newName)); err == nil {
		rn.log.WithFields(logrus.Fields{
			"name": newName,
			"size": info.Size(),
		}).Warn("Name already taken on disk.")
	}

	for counter := 1; ; counter++ {
		if _, err := os.Stat(filepath.Join(dir, newName)); os.IsNotExist(err) {
			return newName
		}
		newName = fmt.Sprintf("%s (%d).%s", base, counter, ext)
	}
}
