package feed

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/api"
)

// LikeChange is a snapshot taken before an optimistic like toggle,
// used to roll the view back if the server rejects the change
type LikeChange struct {
	PrevCount int
	PrevLiked bool
}

// PostView holds the live projection of a single post: the baseline
// fields plus like and comment state that broker updates and local
// optimistic changes both write to. Broker counters are absolute and
// always win over local arithmetic.
type PostView struct {
	mu sync.Mutex

	post     api.Post
	comments []api.Comment
	seenKeys map[string]int // clientKey -> index into comments
	active   bool
}

// NewPostView creates a view seeded from a fetched post
func NewPostView(post api.Post) *PostView {
	return &PostView{
		post:     post,
		seenKeys: make(map[string]int),
	}
}

// ID returns the post identifier
func (v *PostView) ID() int64 {
	return v.post.ID
}

// Snapshot returns the post with the view's current counts folded in
func (v *PostView) Snapshot() api.Post {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.post
}

// LikeCount returns the current like count
func (v *PostView) LikeCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.post.LikeCount
}

// Liked returns whether the viewer has liked the post
func (v *PostView) Liked() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.post.IsLiked
}

// CommentCount returns the current comment count
func (v *PostView) CommentCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.post.CommentsCount
}

// Comments returns the loaded comments in display order
func (v *PostView) Comments() []api.Comment {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]api.Comment, len(v.comments))
	copy(out, v.comments)
	return out
}

// ToggleLike flips the liked flag and adjusts the count immediately,
// before any network call. The returned snapshot feeds RollbackLike if
// the server turns the change down.
func (v *PostView) ToggleLike() LikeChange {
	v.mu.Lock()
	defer v.mu.Unlock()

	change := LikeChange{PrevCount: v.post.LikeCount, PrevLiked: v.post.IsLiked}

	if v.post.IsLiked {
		v.post.IsLiked = false
		if v.post.LikeCount > 0 {
			v.post.LikeCount--
		}
	} else {
		v.post.IsLiked = true
		v.post.LikeCount++
	}

	return change
}

// RollbackLike restores the state captured before an optimistic toggle
func (v *PostView) RollbackLike(change LikeChange) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.post.LikeCount = change.PrevCount
	v.post.IsLiked = change.PrevLiked
}

// ApplyLikeCount sets the absolute like count from the broker. The
// latest value wins regardless of local optimistic arithmetic.
func (v *PostView) ApplyLikeCount(count int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.post.LikeCount = count
}

// ApplyCommentCount sets the absolute comment count from the broker
func (v *PostView) ApplyCommentCount(count int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.post.CommentsCount = count
}

// ApplyComment inserts a comment in creation-time order. A comment
// whose clientKey was already applied updates the existing entry in
// place, so broker echoes of locally submitted comments do not
// duplicate. Returns true when the comment was new.
func (v *PostView) ApplyComment(comment api.Comment) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if comment.ClientKey != "" {
		if i, ok := v.seenKeys[comment.ClientKey]; ok {
			// Server echo of a local comment: adopt its id and
			// author but keep the display position
			created := v.comments[i].CreatedAt
			v.comments[i] = comment
			v.comments[i].CreatedAt = created
			return false
		}
	}

	v.comments = append(v.comments, comment)
	sort.SliceStable(v.comments, func(a, b int) bool {
		return v.comments[a].CreatedAt.Before(v.comments[b].CreatedAt)
	})
	v.reindexKeys()

	v.post.CommentsCount++
	return true
}

// SubmitComment creates a local comment with a fresh idempotency key
// and applies it immediately. The caller sends the returned comment to
// the backend; the broker echo collapses onto it by clientKey.
func (v *PostView) SubmitComment(text string, author api.CommentAuthor) api.Comment {
	comment := api.Comment{
		PostID:    v.post.ID,
		Text:      text,
		ClientKey: uuid.NewString(),
		Author:    author,
		CreatedAt: time.Now(),
	}
	v.ApplyComment(comment)
	return comment
}

// SetActive marks the view as the one dominating the viewport
func (v *PostView) SetActive(active bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.active = active
}

// Active reports whether the view dominates the viewport
func (v *PostView) Active() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active
}

func (v *PostView) reindexKeys() {
	for i, c := range v.comments {
		if c.ClientKey != "" {
			v.seenKeys[c.ClientKey] = i
		}
	}
}
