package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService()
		return profileSvc.Show()
	},
}

var profileUploadPhotoCmd = &cobra.Command{
	Use:   "upload-photo <path>",
	Short: "Upload a new profile photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileSvc := service.NewProfileService()
		return profileSvc.UploadPhoto(args[0])
	},
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUploadPhotoCmd)
}
