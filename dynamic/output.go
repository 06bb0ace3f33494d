// SPDX-License-Identifier: MIT
// Package: steinlib/dynamic
//
// output.go — persistence of a run directory: clear-then-write so the
// directory never mixes artifacts of two runs. If writing fails midway,
// the directory holds a partial but self-consistent subset of the new
// run, never a blend with the old one.

package dynamic

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	runFilePerm = 0o644
	runDirPerm  = 0o755
)

// WriteRun persists ops into dir using the standard layout: updates.dus
// plus instance_<k>.gr for each query snapshot, k counting from 1 in
// emission order. Pre-existing contents of dir (files and subdirectories)
// are removed first; a missing dir is created with all parents.
// Not safe for concurrent writers to the same directory.
func WriteRun(dir string, ops []Operation) error {
	if err := resetDir(dir); err != nil {
		return err
	}

	log, snapshots := Export(ops)
	if err := os.WriteFile(filepath.Join(dir, LogFileName), []byte(log), runFilePerm); err != nil {
		return fmt.Errorf("dynamic: write %s: %w", LogFileName, err)
	}

	for i, snapshot := range snapshots {
		name := fmt.Sprintf(SnapshotFilePattern, i+1)
		if err := os.WriteFile(filepath.Join(dir, name), []byte(snapshot), runFilePerm); err != nil {
			return fmt.Errorf("dynamic: write %s: %w", name, err)
		}
	}

	return nil
}

// resetDir empties dir without deleting the directory itself, creating
// the full tree when absent.
func resetDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		if err = os.MkdirAll(dir, runDirPerm); err != nil {
			return fmt.Errorf("dynamic: create run dir: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("dynamic: read run dir: %w", err)
	}

	for _, entry := range entries {
		if err = os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("dynamic: clear run dir: %w", err)
		}
	}

	return nil
}
