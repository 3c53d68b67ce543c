package service

import (
	"fmt"
	"time"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/api"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/client"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/credentials"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/formatter"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/logger"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/prompter"
)

type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login handles user login
func (s *AuthService) Login() error {
	// Check if already logged in
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds != nil && creds.IsValid() {
		formatter.PrintWarning("Already logged in as %s", creds.Email)
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	client.Init()

	formatter.PrintInfo("Authenticating...")
	resp, err := api.SignIn(email, password)
	if err != nil {
		formatter.PrintError("Login failed: %v", err)
		return err
	}

	client.SetAuthToken(resp.Token)

	creds = &credentials.Credentials{
		Token:    resp.Token,
		Email:    resp.Email,
		FullName: resp.FullName,
		SavedAt:  time.Now(),
	}
	if err := credentials.Save(creds); err != nil {
		formatter.PrintError("Failed to save credentials: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Login successful!")
	formatter.PrintInfo("Logged in as %s", formatter.Bold.Sprint(resp.Email))
	return nil
}

// Register creates a new account and triggers email verification
func (s *AuthService) Register() error {
	fullName, err := prompter.PromptString("Full name: ")
	if err != nil {
		return err
	}
	if fullName == "" {
		return fmt.Errorf("full name cannot be empty")
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	client.Init()

	formatter.PrintInfo("Creating account...")
	if err := api.Register(fullName, email, password); err != nil {
		formatter.PrintError("Registration failed: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Account created")
	formatter.PrintInfo("Check your inbox for the verification code, then run 'yodim-cli auth verify'")
	return nil
}

// Verify confirms an account with the emailed code
func (s *AuthService) Verify() error {
	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}

	code, err := prompter.PromptString("Verification code: ")
	if err != nil {
		return err
	}
	if code == "" {
		return fmt.Errorf("verification code cannot be empty")
	}

	client.Init()

	formatter.PrintInfo("Verifying account...")
	if err := api.VerifyAccount(email, code); err != nil {
		formatter.PrintError("Verification failed: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Account verified. You can log in now.")
	return nil
}

// ForgotPassword starts the password reset flow
func (s *AuthService) ForgotPassword() error {
	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	client.Init()

	if err := api.ForgotPassword(email); err != nil {
		formatter.PrintError("Request failed: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Reset instructions sent to %s", email)
	return nil
}

// Logout handles user logout
func (s *AuthService) Logout() error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds == nil {
		formatter.PrintWarning("Not logged in")
		return nil
	}

	confirm, err := prompter.PromptConfirm("Logout?")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := credentials.Delete(); err != nil {
		formatter.PrintError("Failed to delete credentials: %v", err)
		return err
	}

	client.ClearAuthToken()

	formatter.PrintSuccess("✓ Logged out successfully")
	return nil
}

// WhoAmI shows the current account
func (s *AuthService) WhoAmI() error {
	creds, err := requireAuth()
	if err != nil {
		return err
	}

	formatter.PrintInfo("Fetching account...")
	user, err := api.GetCurrentUser()
	if err != nil {
		if api.IsUnauthorized(err) {
			formatter.PrintError("Session expired. Please login again.")
			credentials.Delete()
			return fmt.Errorf("unauthorized")
		}
		formatter.PrintError("Failed to fetch account: %v", err)
		return err
	}

	fmt.Printf("\n")
	formatter.PrintKeyValue(map[string]interface{}{
		"Full Name": user.FullName,
		"Email":     user.Email,
		"Roles":     fmt.Sprintf("%v", user.Roles),
		"Signed in": creds.SavedAt.Format("2006-01-02 15:04:05"),
	})
	return nil
}

// requireAuth loads stored credentials and primes the HTTP client
func requireAuth() (*credentials.Credentials, error) {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return nil, err
	}

	if creds == nil || !creds.IsValid() {
		formatter.PrintError("Not logged in. Please run 'yodim-cli auth login'")
		return nil, fmt.Errorf("not authenticated")
	}

	client.Init()
	client.SetAuthToken(creds.Token)
	return creds, nil
}
