package cli

import (
	"context"
	"errors"
	"fmt"
)

// Delete prompts for a file ID and removes the file from the server.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter file id to delete", a.out)
	if err != nil {
		return err
	}

	if res := a.fileService.Delete(ctx, id); !res.Success {
		fmt.Fprintln(a.out, res.Error)
		return errors.New(res.Error)
	}

	fmt.Fprintln(a.out, "Deleted.")
	return nil
}
