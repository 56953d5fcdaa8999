package model

import "time"

// Asset is an uploaded media object (image, video, work sample) kept in object storage.
// Entities reference assets by their StoragePath.
type Asset struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
