package model

// RevisionRecord is the metadata of one repository revision. Timestamp is
// kept as the raw string reported by the repository.
type RevisionRecord struct {
	Number    int64
	Author    string
	Timestamp string
	Message   string
}
