package models

// FileRecord is one stored file as known to the client. The authoritative
// copy lives server-side; list responses replace the local collection
// wholesale.
type FileRecord struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploadedAt"`
	URL        string `json:"url,omitempty"`
}
