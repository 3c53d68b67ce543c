package broker

import "fmt"

// Topic name builders for the broker's per-post channels.

// LikesTopic carries absolute like counts for a post
func LikesTopic(postID int64) string {
	return fmt.Sprintf("likes/%d", postID)
}

// CommentsTopic carries newly created comments for a post
func CommentsTopic(postID int64) string {
	return fmt.Sprintf("comments/%d", postID)
}

// CommentCountTopic carries absolute comment counts for a post
func CommentCountTopic(postID int64) string {
	return fmt.Sprintf("comments/size/%d", postID)
}

// EntityTopics returns every topic associated with a post
func EntityTopics(postID int64) []string {
	return []string{
		LikesTopic(postID),
		CommentsTopic(postID),
		CommentCountTopic(postID),
	}
}
