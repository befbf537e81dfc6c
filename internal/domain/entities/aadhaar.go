package entities

// DocumentKind distinguishes how an Aadhaar payload should be presented.
type DocumentKind string

const (
	DocumentImage DocumentKind = "image"
	DocumentPDF   DocumentKind = "pdf"
)

// AadhaarDocument is the raw KYC document fetched from the upstream store.
// Anything not recognizable as an image is served as a PDF.
type AadhaarDocument struct {
	Data        []byte       `json:"-"`
	ContentType string       `json:"content_type"`
	Kind        DocumentKind `json:"kind"`
}
