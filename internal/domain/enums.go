package domain

// FileType represents a document format the extractor understands.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeTXT FileType = "txt"
)

// FileTypeContentTypes maps FileType to its MIME content type.
var FileTypeContentTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeTXT: "text/plain",
}

// SummaryMode selects the prompt used for a generation call.
type SummaryMode string

const (
	ModeSummarize SummaryMode = "summarize"
	ModeAnswer    SummaryMode = "answer"
)

// Response status values shared by every endpoint.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)
