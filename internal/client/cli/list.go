package cli

import (
	"context"
	"errors"
	"fmt"
)

// List refreshes the file listing from the server and prints it.
func (a *App) List(ctx context.Context) error {
	if res := a.fileService.FetchFiles(ctx); !res.Success {
		fmt.Fprintln(a.out, res.Error)
		return errors.New(res.Error)
	}

	files := a.store.FileItems()
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No files uploaded yet.")
		return nil
	}

	for _, f := range files {
		fmt.Fprintf(a.out, "%s  %-30s  %8s  %s\n", f.ID, f.Filename, formatSize(f.Size), f.UploadedAt)
	}
	return nil
}

// formatSize renders a byte count in a human-friendly unit.
func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
