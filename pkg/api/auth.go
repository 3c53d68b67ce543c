package api

import (
	json "github.com/json-iterator/go"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/client"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/logger"
)

// SignIn authenticates a user with email and password
func SignIn(email, password string) (*SignInResponse, error) {
	logger.Debug("Attempting sign-in", "email", email)

	req := SignInRequest{
		Email:    email,
		Password: password,
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/sign-in")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var envelope struct {
		Data SignInResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, err
	}

	logger.Debug("Sign-in successful", "email", envelope.Data.Email)
	return &envelope.Data, nil
}

// Register creates a new account; the backend sends a verification code
// to the given email
func Register(fullName, email, password string) error {
	logger.Debug("Registering account", "email", email)

	req := RegisterRequest{
		FullName: fullName,
		Email:    email,
		Password: password,
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/register")

	return CheckResponse(resp, err)
}

// VerifyAccount confirms the emailed verification code
func VerifyAccount(email, code string) error {
	logger.Debug("Verifying account", "email", email)

	req := VerifyAccountRequest{
		Email: email,
		Code:  code,
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/verify-account")

	return CheckResponse(resp, err)
}

// ForgotPassword starts the password reset flow
func ForgotPassword(email string) error {
	logger.Debug("Requesting password reset", "email", email)

	req := ForgotPasswordRequest{Email: email}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/forgot-password")

	return CheckResponse(resp, err)
}
