package filestorage

import (
	"context"
	"io"
	"mime"

	merge "github.com/merge-api/merge-go-client"
	"github.com/merge-api/merge-go-client/model"
	"github.com/merge-api/merge-go-client/shared"
)

// Client groups the file storage services.
type Client struct {
	*shared.Services

	Files   *FilesService
	Folders *FoldersService
}

// New returns the file storage services of c.
func New(c *merge.Client) *Client {
	return &Client{
		Services: shared.NewServices(c, shared.CategoryFileStorage),
		Files:    &FilesService{r: merge.NewResource[File](c, "filestorage", "files")},
		Folders:  &FoldersService{r: merge.NewResource[Folder](c, "filestorage", "folders")},
	}
}

// FilesService reads, creates and downloads files.
type FilesService struct {
	r *merge.Resource[File]
}

func (s *FilesService) List(ctx context.Context, params *FileListParams, opts ...merge.RequestOption) (*model.Page[File], error) {
	return s.r.List(ctx, params, opts...)
}

func (s *FilesService) Pager(params *FileListParams, opts ...merge.RequestOption) *merge.Pager[File] {
	return s.r.Pager(params, opts...)
}

func (s *FilesService) Retrieve(ctx context.Context, id string, params *shared.RetrieveParams, opts ...merge.RequestOption) (*File, error) {
	return s.r.Retrieve(ctx, id, params, opts...)
}

func (s *FilesService) Create(ctx context.Context, body *FileRequest, opts ...merge.RequestOption) (*model.Response[File], error) {
	return s.r.Create(ctx, &model.WriteRequest[FileRequest]{Model: body}, opts...)
}

// Download is the content of a file.
type Download struct {
	Body        io.ReadCloser
	ContentType string
	Filename    string
}

// Close closes the body.
func (d *Download) Close() error { return d.Body.Close() }

// DownloadRetrieve streams the content of file id. The caller must close the
// returned Download.
func (s *FilesService) DownloadRetrieve(ctx context.Context, id string, params *DownloadParams, opts ...merge.RequestOption) (*Download, error) {
	body, header, err := s.r.Download(ctx, id, params, opts...)
	if err != nil {
		return nil, err
	}
	d := &Download{Body: body, ContentType: header.Get("Content-Type")}
	if cd := header.Get("Content-Disposition"); cd != "" {
		if _, p, err := mime.ParseMediaType(cd); err == nil {
			d.Filename = p["filename"]
		}
	}
	return d, nil
}

// FoldersService reads folders.
type FoldersService struct {
	r *merge.Resource[Folder]
}

func (s *FoldersService) List(ctx context.Context, params *FolderListParams, opts ...merge.RequestOption) (*model.Page[Folder], error) {
	return s.r.List(ctx, params, opts...)
}

func (s *FoldersService) ListAll(ctx context.Context, params *FolderListParams, opts ...merge.RequestOption) ([]*Folder, error) {
	return s.r.ListAll(ctx, params, opts...)
}

func (s *FoldersService) Retrieve(ctx context.Context, id string, params *shared.RetrieveParams, opts ...merge.RequestOption) (*Folder, error) {
	return s.r.Retrieve(ctx, id, params, opts...)
}

// Path returns the names from the root folder down to f, following expanded
// parents. It stops at the first parent that is only an ID.
func Path(f *Folder) []string {
	var names []string
	for seen := 0; f != nil && seen < 64; seen++ {
		if f.Name != nil {
			names = append([]string{*f.Name}, names...)
		}
		if f.ParentFolder == nil {
			break
		}
		f, _ = f.ParentFolder.Expanded()
	}
	return names
}
