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

// GetCurrentUser gets the authenticated account
func GetCurrentUser() (*User, error) {
	logger.Debug("Fetching current user")

	resp, err := client.GetClient().
		R().
		Get("/users/me")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var envelope struct {
		Data User `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, err
	}

	logger.Debug("Current user fetched", "email", envelope.Data.Email)
	return &envelope.Data, nil
}

// UploadProfilePhoto uploads a new profile photo for the current user
func UploadProfilePhoto(filePath string) (*User, error) {
	logger.Debug("Uploading profile photo", "file_path", filePath)

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("photo", filepath.Base(filePath))
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
		Post("/users/upload-profile-photo")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var envelope struct {
		Data User `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}
