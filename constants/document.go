package constants

// PDFSignature is the 4-byte magic every accepted upload must start with.
const PDFSignature = "%PDF"

const (
	// MinCharsPerPage is the scanned-document heuristic: below this average
	// of extractable characters per page the file is treated as image-only.
	MinCharsPerPage = 100

	// MinTextLength is the minimum cleaned text length worth sending to a model.
	MinTextLength = 50

	// MaxUploadBytes caps syllabus uploads at the HTTP boundary.
	MaxUploadBytes = 10 << 20
)
