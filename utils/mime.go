package utils

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

var extToMimeMap = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ContentTypeByExtension returns the MIME type for a stored media file,
// or an empty string for an unknown extension.
func ContentTypeByExtension(filename string) string {
	return extToMimeMap[strings.ToLower(filepath.Ext(filename))]
}

// SniffContentType detects the MIME type from the first bytes of the
// stream and rewinds it.
func SniffContentType(stream io.ReadSeeker) (string, error) {
	buffer := make([]byte, 512)

	n, err := stream.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read stream for mime sniffing: %w", err)
	}

	contentType := http.DetectContentType(buffer[:n])

	if _, err = stream.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to seek stream back to start after sniffing: %w", err)
	}

	return contentType, nil
}
