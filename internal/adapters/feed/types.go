package feed

import "github.com/javaBin/search-indexer/internal/domain"

// FilesAPIResponse is the wrapped form of the file listing
type FilesAPIResponse struct {
	Files []FileResponse `json:"files"`
}

// FileResponse is a single file entry in the feed
type FileResponse struct {
	Key  string         `json:"key"`
	Data map[string]any `json:"data"`
}

func (f FileResponse) toDomain() domain.File {
	data := f.Data
	if data == nil {
		data = map[string]any{}
	}
	return domain.File{Key: f.Key, Data: data}
}
