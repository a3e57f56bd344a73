package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minicheck/internal/diagfmt"
	"minicheck/internal/driver"
	"minicheck/internal/project"
)

// errCheckFailed signals a non-zero exit after everything worth printing
// has already been printed.
var errCheckFailed = errors.New("check failed")

func init() {
	rootCmd.Flags().Int("jobs", 0, "number of files checked in parallel (0 = GOMAXPROCS)")
	rootCmd.Flags().Bool("cache", false, "skip files whose content already checked clean")
}

func runCheck(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	jobs, _ := cmd.Flags().GetInt("jobs")
	withCache, _ := cmd.Flags().GetBool("cache")

	targets := args
	if len(targets) == 0 {
		// No arguments: fall back to the manifest of the enclosing project.
		manifest, found, err := project.Load(".")
		if err != nil {
			return err
		}
		if !found {
			fmt.Fprintf(cmd.ErrOrStderr(), "Usage: %s <source_file>\n", cmd.CommandPath())
			return errCheckFailed
		}
		targets = manifest.CheckTargets()
	}

	var cache *driver.DiskCache
	if withCache {
		cache, err = driver.OpenDiskCache("minicheck")
		if err != nil {
			return fmt.Errorf("failed to open result cache: %w", err)
		}
	}

	// A single directory argument expands to every .mini file under it.
	if len(targets) == 1 {
		if info, statErr := os.Stat(targets[0]); statErr == nil && info.IsDir() {
			files, err := driver.ListMiniFiles(targets[0])
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no %s files under %s", driver.MiniExt, targets[0])
			}
			targets = files
		}
	}

	if len(targets) == 1 {
		return checkOne(cmd, targets[0], maxDiagnostics, quiet, cache)
	}
	return checkMany(cmd, targets, maxDiagnostics, jobs, quiet, cache)
}

func checkOne(cmd *cobra.Command, path string, maxDiagnostics int, quiet bool, cache *driver.DiskCache) error {
	res, err := driver.CheckCached(path, maxDiagnostics, cache)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "ERROR - cannot open %s\n", path)
		return errCheckFailed
	}

	printDiagnostics(cmd, res)
	if !res.OK {
		return errCheckFailed
	}
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Parsing completed successfully.")
	}
	return nil
}

func checkMany(cmd *cobra.Command, paths []string, maxDiagnostics, jobs int, quiet bool, cache *driver.DiskCache) error {
	results := driver.CheckFiles(context.Background(), paths, maxDiagnostics, jobs, cache)

	failed := 0
	for _, fr := range results {
		switch {
		case fr.Err != nil:
			fmt.Fprintf(cmd.ErrOrStderr(), "ERROR - cannot open %s\n", fr.Path)
			failed++
		case !fr.Result.OK:
			printDiagnostics(cmd, fr.Result)
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: failed\n", fr.Path)
			failed++
		default:
			printDiagnostics(cmd, fr.Result)
			if !quiet {
				status := "ok"
				if fr.Result.Cached {
					status = "ok (cached)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", fr.Path, status)
			}
		}
	}

	if failed > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d files failed\n", failed, len(results))
		return errCheckFailed
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Parsing completed successfully.\n")
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, res *driver.CheckResult) {
	if res.Bag.Len() == 0 {
		return
	}
	res.Bag.Sort()
	opts := diagfmt.PrettyOpts{
		Color:     shouldColor(cmd, os.Stderr),
		Context:   2,
		ShowNotes: true,
	}
	diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, res.FileSet, opts)
}
