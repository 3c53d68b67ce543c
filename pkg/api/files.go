package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	json "github.com/json-iterator/go"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/client"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/logger"
)

// UploadFile uploads a file as multipart form data and returns the
// stored path the backend assigned to it
func UploadFile(filePath string) (*UploadedFile, error) {
	logger.Debug("Uploading file", "file_path", filePath)

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Create multipart form
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", writer.FormDataContentType()).
		SetBody(body.Bytes()).
		Post("/files/upload")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var envelope struct {
		Data UploadedFile `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, err
	}

	logger.Debug("File uploaded", "path", envelope.Data.Path)
	return &envelope.Data, nil
}
