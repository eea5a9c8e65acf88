// Package filestorage is the file storage category of the Merge API.
package filestorage

import (
	"time"

	"github.com/merge-api/merge-go-client/enum"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/shared"
	"github.com/merge-api/merge-go-client/value"
)

// File is a stored file.
type File struct {
	model.Base

	ID               *string                         `json:"id"`
	RemoteID         *string                         `json:"remote_id"`
	Name             *string                         `json:"name"`
	FileURL          *string                         `json:"file_url" validate:"omitempty,url"`
	FileThumbnailURL *string                         `json:"file_thumbnail_url" validate:"omitempty,url"`
	Size             *int64                          `json:"size" validate:"omitempty,min=0"`
	MimeType         *string                         `json:"mime_type"`
	Description      *string                         `json:"description"`
	Folder           *model.Expandable[Folder]       `json:"folder"`
	Permissions      []*model.Expandable[Permission] `json:"permissions"`
	Drive            *string                         `json:"drive"`
	RemoteCreatedAt  *time.Time                      `json:"remote_created_at"`
	RemoteUpdatedAt  *time.Time                      `json:"remote_updated_at"`
	RemoteWasDeleted *bool                           `json:"remote_was_deleted"`
	CreatedAt        *time.Time                      `json:"created_at"`
	ModifiedAt       *time.Time                      `json:"modified_at"`
	FieldMappings    value.Value                     `json:"field_mappings"`
	RemoteData       []*shared.RemoteData            `json:"remote_data"`
}

func (f File) MarshalJSON() ([]byte, error) { return model.Marshal(&f) }

func (f *File) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, f) }

// Folder is a folder holding files and other folders.
type Folder struct {
	model.Base

	ID               *string                         `json:"id"`
	RemoteID         *string                         `json:"remote_id"`
	Name             *string                         `json:"name"`
	FolderURL        *string                         `json:"folder_url" validate:"omitempty,url"`
	Size             *int64                          `json:"size" validate:"omitempty,min=0"`
	Description      *string                         `json:"description"`
	ParentFolder     *model.Expandable[Folder]       `json:"parent_folder"`
	Drive            *string                         `json:"drive"`
	Permissions      []*model.Expandable[Permission] `json:"permissions"`
	RemoteCreatedAt  *time.Time                      `json:"remote_created_at"`
	RemoteUpdatedAt  *time.Time                      `json:"remote_updated_at"`
	RemoteWasDeleted *bool                           `json:"remote_was_deleted"`
	CreatedAt        *time.Time                      `json:"created_at"`
	ModifiedAt       *time.Time                      `json:"modified_at"`
	RemoteData       []*shared.RemoteData            `json:"remote_data"`
}

func (f Folder) MarshalJSON() ([]byte, error) { return model.Marshal(&f) }

func (f *Folder) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, f) }

// Permission grants roles on a file or folder.
type Permission struct {
	model.Base

	ID         *string                        `json:"id"`
	RemoteID   *string                        `json:"remote_id"`
	User       *string                        `json:"user"`
	Group      *string                        `json:"group"`
	Type       *enum.Open[PermissionTypeEnum] `json:"type"`
	Roles      []*enum.Open[RolesEnum]        `json:"roles"`
	CreatedAt  *time.Time                     `json:"created_at"`
	ModifiedAt *time.Time                     `json:"modified_at"`
}

func (p Permission) MarshalJSON() ([]byte, error) { return model.Marshal(&p) }

func (p *Permission) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, p) }

// Grants reports whether the permission includes role.
func (p *Permission) Grants(role RolesEnum) bool {
	for _, r := range p.Roles {
		if r != nil && r.Is(role) {
			return true
		}
	}
	return false
}

// FileRequest is the writable subset of File.
type FileRequest struct {
	Name        *string `json:"name" validate:"required"`
	FileURL     *string `json:"file_url" validate:"omitempty,url"`
	MimeType    *string `json:"mime_type"`
	Description *string `json:"description"`
	Folder      *string `json:"folder"`
	Drive       *string `json:"drive"`
}

func (r FileRequest) MarshalJSON() ([]byte, error) { return model.Marshal(&r) }

func (r *FileRequest) UnmarshalJSON(data []byte) error { return model.UnmarshalInto(data, r) }
