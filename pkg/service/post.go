package service

import (
	"fmt"
	"os"
	"regexp"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/api"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/errors"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/feed"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/formatter"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/logger"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/prompter"
)

// dateRe matches the DD.MM.YYYY format the backend stores
var dateRe = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

type PostService struct{}

// NewPostService creates a new post service
func NewPostService() *PostService {
	return &PostService{}
}

// CreateOptions carries the non-interactive inputs for post creation
type CreateOptions struct {
	FullName     string
	BirthDate    string
	DeathDate    string
	Definition   string
	PhotoPath    string
	AccessType   string
	BirthAddress string
	Cemetery     string
	GraveNumber  string
}

// Create validates the memorial details, uploads the photo and creates
// the post
func (s *PostService) Create(opts CreateOptions) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if opts.FullName == "" {
		return errors.ValidationError("full-name", "cannot be empty")
	}
	if !dateRe.MatchString(opts.BirthDate) {
		return errors.ValidationError("birth-date", "must be DD.MM.YYYY")
	}
	if !dateRe.MatchString(opts.DeathDate) {
		return errors.ValidationError("death-date", "must be DD.MM.YYYY")
	}
	if opts.AccessType == "" {
		opts.AccessType = "PUBLIC"
	}

	req := api.CreatePostRequest{
		FullName:     opts.FullName,
		BirthDate:    opts.BirthDate,
		DeathDate:    opts.DeathDate,
		Definition:   opts.Definition,
		AccessType:   opts.AccessType,
		BirthAddress: opts.BirthAddress,
		Cemetery:     opts.Cemetery,
		GraveNumber:  opts.GraveNumber,
	}

	if opts.PhotoPath != "" {
		if _, err := os.Stat(opts.PhotoPath); err != nil {
			return errors.FileNotFoundError(opts.PhotoPath)
		}

		formatter.PrintInfo("Uploading photo...")
		uploaded, err := api.UploadFile(opts.PhotoPath)
		if err != nil {
			formatter.PrintError("Photo upload failed: %v", err)
			return err
		}
		req.ProfilePhoto = uploaded.Path
	}

	formatter.PrintInfo("Creating memorial post...")
	post, err := api.CreatePost(req)
	if err != nil {
		formatter.PrintError("Failed to create post: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Memorial post created for %s", formatter.Bold.Sprint(post.FullName))
	if post.ShareLink != "" {
		formatter.PrintInfo("Share link: %s", post.ShareLink)
	}
	return nil
}

// Mine lists the caller's own posts
func (s *PostService) Mine(page, size int) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	result, err := api.GetMyPosts(page, size)
	if err != nil {
		formatter.PrintError("Failed to fetch your posts: %v", err)
		return err
	}

	if len(result.Content) == 0 {
		formatter.PrintInfo("You have no memorial posts yet")
		return nil
	}

	printPostTable(result.Content)
	formatter.PrintInfo("Page %d, %d posts total", result.Number+1, result.TotalElements)
	return nil
}

// Like toggles the like state of a post. The change is shown
// immediately and rolled back if the server rejects it.
func (s *PostService) Like(postID int64, unlike bool) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	view := feed.NewPostView(api.Post{ID: postID, IsLiked: unlike})
	change := view.ToggleLike()

	if view.Liked() {
		formatter.PrintInfo("Liking post %d...", postID)
	} else {
		formatter.PrintInfo("Removing like from post %d...", postID)
	}

	var count int
	var err error
	if view.Liked() {
		count, err = api.LikePost(postID)
	} else {
		count, err = api.UnlikePost(postID)
	}
	if err != nil {
		view.RollbackLike(change)
		formatter.PrintError("Like failed, change reverted: %v", err)
		return err
	}

	view.ApplyLikeCount(count)

	if view.Liked() {
		formatter.PrintSuccess("✓ Liked. The post now has %d likes", view.LikeCount())
	} else {
		formatter.PrintSuccess("✓ Like removed. The post now has %d likes", view.LikeCount())
	}
	return nil
}

// Comment submits a comment on a post
func (s *PostService) Comment(postID int64, text string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if text == "" {
		prompted, err := prompter.PromptString("Comment: ")
		if err != nil {
			return err
		}
		text = prompted
	}
	if text == "" {
		return errors.ValidationError("text", "cannot be empty")
	}

	user, err := api.GetCurrentUser()
	if err != nil {
		formatter.PrintError("Failed to fetch account: %v", err)
		return err
	}

	view := feed.NewPostView(api.Post{ID: postID})
	local := view.SubmitComment(text, api.CommentAuthor{Name: user.FullName, Photo: user.Photo})

	logger.Debug("Submitting comment", "post", postID, "clientKey", local.ClientKey)

	saved, err := api.AddComment(postID, api.AddCommentRequest{
		Text:      local.Text,
		ClientKey: local.ClientKey,
	})
	if err != nil {
		formatter.PrintError("Failed to add comment: %v", err)
		return err
	}

	view.ApplyComment(*saved)

	formatter.PrintSuccess("✓ Comment added")
	return nil
}

// Comments lists the comments of a post, oldest first
func (s *PostService) Comments(postID int64, page, size int) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	comments, err := api.GetComments(postID, page, size)
	if err != nil {
		formatter.PrintError("Failed to fetch comments: %v", err)
		return err
	}

	if len(comments) == 0 {
		formatter.PrintInfo("No comments yet")
		return nil
	}

	view := feed.NewPostView(api.Post{ID: postID})
	for _, c := range comments {
		view.ApplyComment(c)
	}

	for _, c := range view.Comments() {
		fmt.Printf("[%s] %s: %s\n", c.CreatedAt.Format("2006-01-02 15:04"), c.Author.Name, c.Text)
	}
	return nil
}
