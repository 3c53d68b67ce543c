package feed

import (
	"testing"
	"time"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/api"
)

func basePost() api.Post {
	return api.Post{
		ID:            42,
		FullName:      "Abdulloh Karimov",
		LikeCount:     10,
		CommentsCount: 3,
		IsLiked:       false,
	}
}

func TestToggleLikeIsSynchronous(t *testing.T) {
	v := NewPostView(basePost())

	change := v.ToggleLike()

	// The flip is observable immediately, before any network call
	if !v.Liked() {
		t.Error("Post should be liked right after toggle")
	}
	if v.LikeCount() != 11 {
		t.Errorf("Expected count 11, got %d", v.LikeCount())
	}
	if change.PrevCount != 10 || change.PrevLiked {
		t.Errorf("Snapshot should capture the prior state: %+v", change)
	}
}

func TestToggleLikeBackAndForth(t *testing.T) {
	v := NewPostView(basePost())

	v.ToggleLike()
	v.ToggleLike()

	if v.Liked() {
		t.Error("Double toggle should restore unliked state")
	}
	if v.LikeCount() != 10 {
		t.Errorf("Expected count 10, got %d", v.LikeCount())
	}
}

func TestToggleLikeNeverGoesNegative(t *testing.T) {
	post := basePost()
	post.IsLiked = true
	post.LikeCount = 0 // inconsistent baseline from the backend
	v := NewPostView(post)

	v.ToggleLike()

	if v.LikeCount() != 0 {
		t.Errorf("Count must not go negative, got %d", v.LikeCount())
	}
}

func TestRollbackLike(t *testing.T) {
	v := NewPostView(basePost())

	change := v.ToggleLike()
	v.RollbackLike(change)

	if v.Liked() {
		t.Error("Rollback should restore unliked state")
	}
	if v.LikeCount() != 10 {
		t.Errorf("Rollback should restore count 10, got %d", v.LikeCount())
	}
}

func TestApplyLikeCountLastValueWins(t *testing.T) {
	v := NewPostView(basePost())

	// Broker deltas carry absolute values; only arrival order matters
	v.ApplyLikeCount(15)
	v.ApplyLikeCount(12)
	v.ApplyLikeCount(14)

	if v.LikeCount() != 14 {
		t.Errorf("Last value should win, got %d", v.LikeCount())
	}
}

func TestBrokerCountOverridesOptimisticValue(t *testing.T) {
	v := NewPostView(basePost())

	v.ToggleLike() // optimistic 11
	v.ApplyLikeCount(25)

	if v.LikeCount() != 25 {
		t.Errorf("Broker count should override the optimistic value, got %d", v.LikeCount())
	}
	if !v.Liked() {
		t.Error("Broker count should not touch the liked flag")
	}
}

func TestApplyCommentOrdering(t *testing.T) {
	v := NewPostView(basePost())
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	v.ApplyComment(api.Comment{ID: 2, Text: "second", CreatedAt: base.Add(time.Minute)})
	v.ApplyComment(api.Comment{ID: 1, Text: "first", CreatedAt: base})
	v.ApplyComment(api.Comment{ID: 3, Text: "third", CreatedAt: base.Add(2 * time.Minute)})

	comments := v.Comments()
	if len(comments) != 3 {
		t.Fatalf("Expected 3 comments, got %d", len(comments))
	}
	for i, want := range []string{"first", "second", "third"} {
		if comments[i].Text != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, comments[i].Text)
		}
	}
}

func TestApplyCommentBumpsCount(t *testing.T) {
	v := NewPostView(basePost())

	if added := v.ApplyComment(api.Comment{ID: 1, Text: "yangi izoh", CreatedAt: time.Now()}); !added {
		t.Error("New comment should report added")
	}
	if v.CommentCount() != 4 {
		t.Errorf("Expected count 4, got %d", v.CommentCount())
	}
}

func TestSubmitCommentEchoDedupes(t *testing.T) {
	v := NewPostView(basePost())

	local := v.SubmitComment("Alloh rahmat qilsin", api.CommentAuthor{Name: "Diyorbek"})

	if local.ClientKey == "" {
		t.Fatal("Submitted comment should carry a client key")
	}
	if len(v.Comments()) != 1 {
		t.Fatalf("Local comment should be visible immediately, got %d", len(v.Comments()))
	}
	countAfterSubmit := v.CommentCount()

	// Broker echoes the comment back with the server id
	echo := local
	echo.ID = 77
	echo.CreatedAt = local.CreatedAt.Add(time.Second)
	if added := v.ApplyComment(echo); added {
		t.Error("Echo should not count as a new comment")
	}

	comments := v.Comments()
	if len(comments) != 1 {
		t.Fatalf("Echo should not duplicate, got %d comments", len(comments))
	}
	if comments[0].ID != 77 {
		t.Errorf("Echo should carry the server id onto the local comment, got %d", comments[0].ID)
	}
	if v.CommentCount() != countAfterSubmit {
		t.Errorf("Echo should not bump the count: %d vs %d", v.CommentCount(), countAfterSubmit)
	}
}

func TestSubmitCommentKeysAreUnique(t *testing.T) {
	v := NewPostView(basePost())

	a := v.SubmitComment("birinchi", api.CommentAuthor{Name: "A"})
	b := v.SubmitComment("ikkinchi", api.CommentAuthor{Name: "B"})

	if a.ClientKey == b.ClientKey {
		t.Error("Each submission needs its own client key")
	}
}

func TestForeignCommentsWithoutKey(t *testing.T) {
	v := NewPostView(basePost())
	now := time.Now()

	// Comments from other users arrive without a client key and must
	// all be kept
	v.ApplyComment(api.Comment{ID: 1, Text: "bir", CreatedAt: now})
	v.ApplyComment(api.Comment{ID: 2, Text: "ikki", CreatedAt: now.Add(time.Second)})

	if len(v.Comments()) != 2 {
		t.Errorf("Keyless comments should never dedupe, got %d", len(v.Comments()))
	}
}

func TestApplyCommentCountLastValueWins(t *testing.T) {
	v := NewPostView(basePost())

	v.ApplyCommentCount(9)
	v.ApplyCommentCount(7)

	if v.CommentCount() != 7 {
		t.Errorf("Last value should win, got %d", v.CommentCount())
	}
}

func TestActiveFlag(t *testing.T) {
	v := NewPostView(basePost())

	if v.Active() {
		t.Error("New view should not be active")
	}
	v.SetActive(true)
	if !v.Active() {
		t.Error("View should be active")
	}
	v.SetActive(false)
	if v.Active() {
		t.Error("View should be inactive again")
	}
}

func TestSnapshotCarriesLiveCounts(t *testing.T) {
	v := NewPostView(basePost())

	v.ApplyLikeCount(100)
	v.ApplyCommentCount(50)

	snap := v.Snapshot()
	if snap.LikeCount != 100 || snap.CommentsCount != 50 {
		t.Errorf("Snapshot should carry live counts: %+v", snap)
	}
	if snap.FullName != "Abdulloh Karimov" {
		t.Errorf("Snapshot should keep baseline fields, got %s", snap.FullName)
	}
}
