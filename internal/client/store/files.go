package store

import "github.com/filebox/filebox/internal/client/models"

// FilesState describes the dashboard slice. Items keep the server-determined
// order. UploadingFileID and DeletingFileID hold at most one in-flight
// operation each ("" when idle); two concurrent uploads would share the
// single indicator — a known limitation carried over deliberately.
type FilesState struct {
	Items           []models.FileRecord
	LoadingCount    int
	UploadingFileID string
	DeletingFileID  string
}

func (f FilesState) clone() FilesState {
	c := f
	c.Items = append([]models.FileRecord(nil), f.Items...)
	return c
}

// PushFilesLoading marks the start of an in-flight files request.
func (s *Store) PushFilesLoading() {
	s.mutateFiles(func(f *FilesState) {
		f.LoadingCount++
	})
}

// PopFilesLoading marks the end of an in-flight files request, floored at zero.
func (s *Store) PopFilesLoading() {
	s.mutateFiles(func(f *FilesState) {
		if f.LoadingCount == 0 {
			return
		}
		f.LoadingCount--
	})
}

// SetFiles replaces the whole collection. List responses are authoritative,
// never merged.
func (s *Store) SetFiles(items []models.FileRecord) {
	s.mutateFiles(func(f *FilesState) {
		f.Items = append([]models.FileRecord(nil), items...)
	})
}

// RemoveFile filters out the record with the given id, preserving the order
// of the rest.
func (s *Store) RemoveFile(id string) {
	s.mutateFiles(func(f *FilesState) {
		kept := f.Items[:0]
		for _, item := range f.Items {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		f.Items = kept
	})
}

// ClearFiles empties the collection. Invoked on dashboard teardown so the
// next session never sees stale records.
func (s *Store) ClearFiles() {
	s.mutateFiles(func(f *FilesState) {
		f.Items = nil
	})
}

// SetUploadingFileID sets ("" clears) the id of the file currently uploading.
func (s *Store) SetUploadingFileID(id string) {
	s.mutateFiles(func(f *FilesState) {
		f.UploadingFileID = id
	})
}

// SetDeletingFileID sets ("" clears) the id of the file currently deleting.
func (s *Store) SetDeletingFileID(id string) {
	s.mutateFiles(func(f *FilesState) {
		f.DeletingFileID = id
	})
}

// Files returns a snapshot of the files slice.
func (s *Store) Files() FilesState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.files.clone()
}

// FileItems returns a copy of the current collection.
func (s *Store) FileItems() []models.FileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.FileRecord(nil), s.files.Items...)
}
