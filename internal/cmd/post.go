package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/service"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Manage memorial posts",
}

var createOpts service.CreateOptions

var postCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a memorial post",
	Long:  "Create a memorial post with the deceased person's details and an optional photo",
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Create(createOpts)
	},
}

var (
	postPage int
	postSize int
)

var postMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your own memorial posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		postSvc := service.NewPostService()
		return postSvc.Mine(postPage, postSize)
	},
}

var postLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a memorial post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parsePostID(args[0])
		if err != nil {
			return err
		}
		postSvc := service.NewPostService()
		return postSvc.Like(postID, false)
	},
}

var postUnlikeCmd = &cobra.Command{
	Use:   "unlike <post-id>",
	Short: "Remove your like from a memorial post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parsePostID(args[0])
		if err != nil {
			return err
		}
		postSvc := service.NewPostService()
		return postSvc.Like(postID, true)
	},
}

var commentText string

var postCommentCmd = &cobra.Command{
	Use:   "comment <post-id>",
	Short: "Comment on a memorial post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parsePostID(args[0])
		if err != nil {
			return err
		}
		postSvc := service.NewPostService()
		return postSvc.Comment(postID, commentText)
	},
}

var postCommentsCmd = &cobra.Command{
	Use:   "comments <post-id>",
	Short: "List the comments of a memorial post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parsePostID(args[0])
		if err != nil {
			return err
		}
		postSvc := service.NewPostService()
		return postSvc.Comments(postID, postPage, postSize)
	},
}

func init() {
	postCreateCmd.Flags().StringVar(&createOpts.FullName, "full-name", "", "Full name of the deceased")
	postCreateCmd.Flags().StringVar(&createOpts.BirthDate, "birth-date", "", "Birth date (DD.MM.YYYY)")
	postCreateCmd.Flags().StringVar(&createOpts.DeathDate, "death-date", "", "Death date (DD.MM.YYYY)")
	postCreateCmd.Flags().StringVar(&createOpts.Definition, "definition", "", "A few words about the person")
	postCreateCmd.Flags().StringVar(&createOpts.PhotoPath, "photo", "", "Path to a profile photo")
	postCreateCmd.Flags().StringVar(&createOpts.AccessType, "access", "PUBLIC", "Access type: PUBLIC or PRIVATE")
	postCreateCmd.Flags().StringVar(&createOpts.BirthAddress, "birth-address", "", "Birth address")
	postCreateCmd.Flags().StringVar(&createOpts.Cemetery, "cemetery", "", "Cemetery name")
	postCreateCmd.Flags().StringVar(&createOpts.GraveNumber, "grave-number", "", "Grave number")

	postMineCmd.Flags().IntVar(&postPage, "page", 0, "Page number")
	postMineCmd.Flags().IntVar(&postSize, "size", 20, "Page size")
	postCommentsCmd.Flags().IntVar(&postPage, "page", 0, "Page number")
	postCommentsCmd.Flags().IntVar(&postSize, "size", 20, "Page size")

	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postMineCmd)
	postCmd.AddCommand(postLikeCmd)
	postCmd.AddCommand(postUnlikeCmd)
	postCmd.AddCommand(postCommentCmd)
	postCmd.AddCommand(postCommentsCmd)
}
