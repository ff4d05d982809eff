package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/filebox/filebox/internal/filex"
)

// Upload prompts for a local path and sends the file to the server.
// The listing is refreshed by the service on success.
func (a *App) Upload(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter path to the file", a.out)
	if err != nil {
		return err
	}

	name, size, r, err := filex.OpenForUpload(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot open %s: %v\n", path, err)
		return err
	}
	defer r.Close()

	fmt.Fprintf(a.out, "Uploading %s (%s)...\n", name, formatSize(size))

	if res := a.fileService.Upload(ctx, name, r); !res.Success {
		fmt.Fprintln(a.out, res.Error)
		return errors.New(res.Error)
	}

	fmt.Fprintln(a.out, "Uploaded.")
	return nil
}
