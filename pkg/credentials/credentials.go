package credentials

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/config"
)

// Credentials is the persisted session: the bearer token issued by the
// backend at sign-in plus the account identity it belongs to.
type Credentials struct {
	Token    string    `json:"token"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	SavedAt  time.Time `json:"saved_at"`
}

// Load loads credentials from disk
func Load() (*Credentials, error) {
	path := config.GetCredentialsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Credentials don't exist yet
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

// Save saves credentials to disk
func Save(creds *Credentials) error {
	path := config.GetCredentialsPath()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}

// Delete deletes credentials from disk
func Delete() error {
	path := config.GetCredentialsPath()
	return os.Remove(path)
}

// IsValid checks if a usable session token is present
func (c *Credentials) IsValid() bool {
	return c != nil && c.Token != ""
}
