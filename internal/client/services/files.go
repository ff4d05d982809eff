package services

import (
	"context"
	"io"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/filebox/filebox/internal/client/api"
	"github.com/filebox/filebox/internal/client/store"
	"github.com/filebox/filebox/internal/logging"
)

// FileService orchestrates the dashboard flows: listing, uploading and
// deleting files, plus dashboard setup and teardown.
type FileService struct {
	api   api.Files
	auth  *AuthService
	store *store.Store
	nav   Navigator
	log   logging.Logger

	// newTempID generates the placeholder id shown while an upload is in
	// flight, before the server has assigned a real one.
	newTempID func() string
}

func NewFileService(fapi api.Files, auth *AuthService, s *store.Store, nav Navigator, log logging.Logger) *FileService {
	return &FileService{
		api:       fapi,
		auth:      auth,
		store:     s,
		nav:       nav,
		log:       log.With("component", "files"),
		newTempID: uuid.NewString,
	}
}

// expireSession is the uniform reaction to a 401 on a protected call:
// clear the session (store + durable snapshot) and navigate to login once.
func (s *FileService) expireSession(ctx context.Context) {
	s.log.Info(ctx, "session expired")
	s.auth.Logout(ctx)
	s.nav.ToLogin()
}

// FetchFiles replaces the local collection with the backend's listing.
func (s *FileService) FetchFiles(ctx context.Context) Result {
	s.store.PushFilesLoading()
	defer s.store.PopFilesLoading()

	res := s.api.List(ctx)
	switch {
	case res.OK():
		s.store.SetFiles(*res.Data)
		return ok()
	case res.Unauthorized():
		s.expireSession(ctx)
		return fail(SessionExpiredError)
	default:
		return fail(res.Error)
	}
}

// Upload sends one file and then refetches the listing so the new record
// appears with its server-assigned id. The uploading indicator is set to a
// placeholder id for the duration of the flow and cleared on every exit path.
func (s *FileService) Upload(ctx context.Context, filename string, r io.Reader) Result {
	s.store.SetUploadingFileID("temp-" + s.newTempID())
	defer s.store.SetUploadingFileID("")

	res := s.api.Upload(ctx, filename, r)
	switch {
	case res.Unauthorized():
		s.expireSession(ctx)
		return fail(SessionExpiredError)
	case !res.OK():
		return fail(res.Error)
	}

	s.log.Info(ctx, "uploaded", "name", filename, "id", res.Data.ID)

	if refetch := s.FetchFiles(ctx); !refetch.Success {
		s.log.Warn(ctx, "refreshing listing after upload", "err", refetch.Error)
	}
	return ok()
}

// Delete removes one file on the backend and filters it out of local state.
// The deleting indicator is cleared on every exit path.
func (s *FileService) Delete(ctx context.Context, id string) Result {
	s.store.SetDeletingFileID(id)
	defer s.store.SetDeletingFileID("")

	res := s.api.Delete(ctx, id)
	switch {
	case res.Unauthorized():
		s.expireSession(ctx)
		return fail(SessionExpiredError)
	case !res.OK():
		return fail(res.Error)
	}

	s.store.RemoveFile(id)
	s.log.Info(ctx, "deleted", "id", id)
	return ok()
}

// InitDashboard fetches the current user and the file listing concurrently.
// Both fetches are always attempted; the combined result succeeds only when
// both did.
func (s *FileService) InitDashboard(ctx context.Context) Result {
	var userRes, filesRes Result

	var g errgroup.Group
	g.Go(func() error {
		userRes = s.auth.FetchCurrentUser(ctx)
		return nil
	})
	g.Go(func() error {
		filesRes = s.FetchFiles(ctx)
		return nil
	})
	_ = g.Wait()

	if userRes.Success && filesRes.Success {
		return ok()
	}
	if !filesRes.Success {
		return fail(filesRes.Error)
	}
	return fail(userRes.Error)
}

// DestroyDashboard clears the collection when leaving the dashboard, so the
// next visit — possibly by a different account — never sees stale records.
func (s *FileService) DestroyDashboard() {
	s.store.ClearFiles()
}
