// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !windows

package store

import (
	"fmt"
	"io"
	"os"

	"github.com/google/renameio/v2"
)

// writeAtomic writes src to path through a pending file that is fsynced and
// renamed over the destination.
func writeAtomic(path string, perm os.FileMode, src io.WriterTo) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	// No-op once the file has been committed.
	defer pendingFile.Cleanup()

	if _, err := src.WriteTo(pendingFile); err != nil {
		return fmt.Errorf("write pending file: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace file: %w", err)
	}
	return nil
}
