package main

import (
	"fmt"
	"os"

	"github.com/shayanh/renamify"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}
	dir := os.Args[1]
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "error: %s is not a directory\n", dir)
		os.Exit(1)
	}

	config, err := renamify.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	inferrer := renamify.NewTitleInferrer(
		renamify.PDFMetadataReader{},
		renamify.PDFSpanCollector{},
		renamify.DefaultJournalKeywords,
		log,
	)
	renamer := renamify.NewRenamer(inferrer, config.DryRun, log)

	// Per-file failures are already logged; they never change the exit code.
	if err := renamer.RenameFolder(dir); err != nil {
		log.Error(err)
	}
}
