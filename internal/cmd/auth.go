package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/service"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Manage authentication with Yodimdasiz",
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Yodimdasiz account",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Register()
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to Yodimdasiz",
	Long:  "Authenticate with Yodimdasiz using email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Login()
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a new account with the emailed code",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Verify()
	},
}

var forgotCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password reset",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.ForgotPassword()
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from Yodimdasiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Logout()
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Display the current authenticated account",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.WhoAmI()
	},
}

func init() {
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(verifyCmd)
	authCmd.AddCommand(forgotCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
}
