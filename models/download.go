package models

import "time"

// DownloadRecord is a history entry for a paste whose attachment was saved
// to disk.
type DownloadRecord struct {
	PasteID        string    `json:"paste_id"`
	AttachmentName string    `json:"attachment_name"`
	Path           string    `json:"path"`
	SHA256         string    `json:"sha256"`
	Size           int64     `json:"size"`
	DownloadedAt   time.Time `json:"downloaded_at"`
}
