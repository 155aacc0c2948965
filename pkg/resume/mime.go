package resume

import (
	"mime"
	"path/filepath"
	"strings"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeDOC  = "application/msword"
)

// office types are missing from Go's builtin table and unreliable in system ones
var extTypes = map[string]string{
	".pdf":  MimePDF,
	".docx": MimeDOCX,
	".doc":  MimeDOC,
}

// MimeTypeFromFilename guesses the MIME type from the file extension only.
// It returns "" when the extension is unknown.
func MimeTypeFromFilename(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return ""
	}
	if t, ok := extTypes[ext]; ok {
		return t
	}
	t, _, err := mime.ParseMediaType(mime.TypeByExtension(ext))
	if err != nil {
		return ""
	}
	return t
}

// IsSupported reports whether mimeType can be handed to Extract.
func IsSupported(mimeType string) bool {
	switch mimeType {
	case MimePDF, MimeDOCX, MimeDOC:
		return true
	}
	return false
}
