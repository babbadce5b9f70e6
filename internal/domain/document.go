package domain

import "fmt"

const (
	// ObjectIDField is the document field holding the unique identifier in the search index
	ObjectIDField = "objectID"

	// KeyField is the document field holding the originating file key
	KeyField = "key"
)

// Document is the record submitted to the remote search index.
// It must carry a unique ObjectIDField; all other fields are stored verbatim.
type Document map[string]any

// Batch maps file keys to the documents collected for them.
// A nil Document marks a key that was skipped during collection.
type Batch map[string]Document

// NewDocument builds the default document for a file: the identifier and key
// are set to the file key, then the file data fields are copied over them.
func NewDocument(file File) Document {
	doc := make(Document, len(file.Data)+2)
	doc[ObjectIDField] = file.Key
	doc[KeyField] = file.Key
	for k, v := range file.Data {
		doc[k] = v
	}
	return doc
}

// ID returns the document identifier as a string
func (d Document) ID() string {
	switch v := d[ObjectIDField].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Documents returns the non-nil documents of the batch.
// Order follows map iteration and is not stable.
func (b Batch) Documents() []Document {
	docs := make([]Document, 0, len(b))
	for _, doc := range b {
		if doc != nil {
			docs = append(docs, doc)
		}
	}
	return docs
}

// Len returns the number of non-nil documents in the batch
func (b Batch) Len() int {
	n := 0
	for _, doc := range b {
		if doc != nil {
			n++
		}
	}
	return n
}
