package controllers

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
)

// fileToDataURI buffers an uploaded file and encodes it as a self-describing
// data URI, the storage format for every in-document image.
func fileToDataURI(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("error opening uploaded file: %w", err)
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("error reading uploaded file: %w", err)
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(payload)), nil
}
