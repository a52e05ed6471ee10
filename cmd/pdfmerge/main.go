// Command pdfmerge merges every PDF beneath a directory into one file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"pdf-merge-api/internal/domain"
	"pdf-merge-api/internal/pdf"
	"pdf-merge-api/internal/service"
	"pdf-merge-api/pkg/logger"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type cliFlags struct {
	dir     string
	out     string
	strict  bool
	verbose bool
	timeout time.Duration
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("pdfmerge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&f.dir, "dir", "d", "", "directory to search recursively for PDF files (required)")
	fs.StringVarP(&f.out, "out", "o", "", "output file (default merged_<timestamp>.pdf)")
	fs.BoolVar(&f.strict, "strict", false, "use strict PDF validation")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug output to stderr")
	fs.DurationVar(&f.timeout, "timeout", 0, "abort the merge after this duration (0 = no limit)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if f.dir == "" && fs.NArg() > 0 {
		f.dir = fs.Arg(0)
	}

	req := domain.MergeRequest{DirectoryPath: f.dir}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	flags, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "pdfmerge:", err)
		return exitUsage
	}

	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	log := logger.NewLoggerWithWriter(stderr, level, "text")

	mode := pdf.ValidationRelaxed
	if flags.strict {
		mode = pdf.ValidationStrict
	}
	out := flags.out
	if out == "" {
		out = domain.SuggestedFilename(time.Now())
	}
	// A previous run may have left its output inside the scanned tree.
	merger := service.NewMergeService(pdf.NewEngine(pdf.WithValidationMode(mode)), log,
		service.WithExcludedFiles(out))

	ctx := context.Background()
	if flags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.timeout)
		defer cancel()
	}

	result, err := merger.MergeDirectory(ctx, flags.dir)
	if err != nil {
		fmt.Fprintln(stderr, "pdfmerge:", err)
		return exitFailure
	}

	if err := os.WriteFile(out, result.Content, 0o644); err != nil {
		fmt.Fprintln(stderr, "pdfmerge:", err)
		return exitFailure
	}

	for _, skipped := range result.Skipped {
		fmt.Fprintf(stderr, "skipped %s: %s\n", skipped.Path, skipped.Reason)
	}
	fmt.Fprintf(stdout, "%s: %d pages from %d files (%d skipped)\n",
		out, result.PageCount, len(result.Files), len(result.Skipped))
	return exitOK
}
