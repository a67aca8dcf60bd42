package models

// File - a generated download, streamed back as an attachment
type File struct {
	Name        string
	ContentType string
	Body        []byte
}
