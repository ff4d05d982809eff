package devserver

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/filebox/filebox/internal/common"
)

type user struct {
	ID           string
	Email        string
	PasswordHash []byte
}

type fileEntry struct {
	ID         string
	OwnerID    string
	Filename   string
	Size       int64
	UploadedAt time.Time
	Data       []byte
}

// memStore keeps users and files in process memory, guarded by one mutex.
type memStore struct {
	mu      sync.RWMutex
	users   map[string]*user // keyed by id
	byEmail map[string]*user
	files   map[string]*fileEntry
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[string]*user),
		byEmail: make(map[string]*user),
		files:   make(map[string]*fileEntry),
	}
}

func (m *memStore) createUser(email string, passwordHash []byte) (*user, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byEmail[email]; exists {
		return nil, common.ErrAlreadyExists
	}

	u := &user{ID: uuid.NewString(), Email: email, PasswordHash: passwordHash}
	m.users[u.ID] = u
	m.byEmail[email] = u
	return u, nil
}

func (m *memStore) userByEmail(email string) (*user, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (m *memStore) userByID(id string) (*user, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (m *memStore) addFile(ownerID, filename string, data []byte) *fileEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	f := &fileEntry{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Filename:   filename,
		Size:       int64(len(data)),
		UploadedAt: time.Now().UTC(),
		Data:       data,
	}
	m.files[f.ID] = f
	return f
}

// filesForOwner returns the owner's files, most recent first.
func (m *memStore) filesForOwner(ownerID string) []*fileEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*fileEntry
	for _, f := range m.files {
		if f.OwnerID == ownerID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out
}

func (m *memStore) fileForOwner(ownerID, id string) (*fileEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[id]
	if !ok || f.OwnerID != ownerID {
		return nil, common.ErrNotFound
	}
	return f, nil
}

func (m *memStore) deleteFile(ownerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.files[id]
	if !ok || f.OwnerID != ownerID {
		return common.ErrNotFound
	}
	delete(m.files, id)
	return nil
}
