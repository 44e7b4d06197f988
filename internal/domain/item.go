package domain

import (
	"path"
	"strings"
)

// Item is a single catalog entry from an item listing or search response.
// ID is the export key. Thumbnail, when present, is a display hint only.
type Item struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	InternalName string `json:"internal_name,omitempty"`
	Type         string `json:"type,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
}

// TypeLabel returns the item's type for display, empty when absent.
func (i Item) TypeLabel() string {
	return i.Type
}

// SessionStatus is the backend's answer to the startup status query.
type SessionStatus struct {
	Configured bool   `json:"configured"`
	GamePath   string `json:"sc_path,omitempty"`
	Version    string `json:"version,omitempty"`
	Loading    bool   `json:"loading,omitempty"`
}

// ThumbnailReport summarizes a thumbnail generation run. Skipped counts
// items whose thumbnail already existed in the server-side cache.
type ThumbnailReport struct {
	Status    string `json:"status"`
	Generated int    `json:"generated"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
	Total     int    `json:"total,omitempty"`
}

// Complete reports whether the run finished on the server side.
func (r ThumbnailReport) Complete() bool {
	return r.Status == "complete"
}

// ThumbnailStatus is the per-category thumbnail coverage probe result.
type ThumbnailStatus struct {
	HasThumbnails bool `json:"has_thumbnails"`
	Count         int  `json:"count"`
	Total         int  `json:"total"`
}

// ExportResult is the outcome of a server-side export. A 2xx response with
// a Status other than "success" is an application-level failure.
type ExportResult struct {
	Status      string `json:"status"`
	Name        string `json:"name,omitempty"`
	OutputFile  string `json:"output_file"`
	DownloadURL string `json:"download_url"`
	PreviewURL  string `json:"preview_url,omitempty"`
	Message     string `json:"message,omitempty"`
}

// Succeeded reports whether the export completed on the server.
func (r ExportResult) Succeeded() bool {
	return r.Status == "success"
}

// Filename derives the suggested download filename from the last path
// segment of OutputFile. The backend may report native Windows paths.
func (r ExportResult) Filename() string {
	p := strings.ReplaceAll(r.OutputFile, `\`, "/")
	name := path.Base(p)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
