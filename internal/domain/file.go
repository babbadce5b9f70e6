package domain

// File is a record produced by a file source. The indexer only interprets Key;
// everything in Data is passed through to the search index untouched.
type File struct {
	Key  string         `json:"key"`
	Data map[string]any `json:"data,omitempty"`
}

// Field returns the named data field and whether it is present
func (f File) Field(name string) (any, bool) {
	if f.Data == nil {
		return nil, false
	}
	v, ok := f.Data[name]
	return v, ok
}
