package domain

// UploadEvent reports progress of a file upload.
// Exactly one event per upload has Final set; it carries either FileID or Err.
type UploadEvent struct {
	Name    string
	Percent int
	Sent    int64
	Total   int64
	Final   bool
	FileID  string
	Err     error
}

// Failed reports whether the upload terminated with an error.
func (e UploadEvent) Failed() bool {
	return e.Final && e.Err != nil
}
