package service

import (
	"fmt"
	"os"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/api"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/errors"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/formatter"
)

type ProfileService struct{}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// Show displays the authenticated account's profile
func (s *ProfileService) Show() error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	user, err := api.GetCurrentUser()
	if err != nil {
		formatter.PrintError("Failed to fetch profile: %v", err)
		return err
	}

	fmt.Printf("\n")
	formatter.PrintKeyValue(map[string]interface{}{
		"Full Name": user.FullName,
		"Email":     user.Email,
		"Roles":     fmt.Sprintf("%v", user.Roles),
		"Photo":     user.Photo,
	})
	return nil
}

// UploadPhoto replaces the profile photo
func (s *ProfileService) UploadPhoto(path string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if _, err := os.Stat(path); err != nil {
		return errors.FileNotFoundError(path)
	}

	formatter.PrintInfo("Uploading profile photo...")
	user, err := api.UploadProfilePhoto(path)
	if err != nil {
		formatter.PrintError("Upload failed: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Profile photo updated")
	if user.Photo != "" {
		formatter.PrintInfo("Stored at %s", user.Photo)
	}
	return nil
}
