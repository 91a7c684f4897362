package domain

// Upload is a file attached to a chat message, held in memory until the
// creation pipeline has extracted its text.
type Upload struct {
	Meta FileMeta
	Data []byte
}

// Document is an upload after text extraction.
type Document struct {
	Meta FileMeta
	Text string
}
