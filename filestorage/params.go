package filestorage

import "github.com/merge-api/merge-go-client/shared"

// FileListParams filters the file list.
type FileListParams struct {
	shared.ListParams

	FolderID string `url:"folder_id,omitempty"`
	DriveID  string `url:"drive_id,omitempty"`
	Name     string `url:"name,omitempty"`
	MimeType string `url:"mime_type,omitempty"`
}

// FolderListParams filters the folder list.
type FolderListParams struct {
	shared.ListParams

	ParentFolderID string `url:"parent_folder_id,omitempty"`
	DriveID        string `url:"drive_id,omitempty"`
	Name           string `url:"name,omitempty"`
}

// DownloadParams selects the exported format of a file.
type DownloadParams struct {
	MimeType string `url:"mime_type,omitempty"`
}
