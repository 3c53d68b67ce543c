package api

import (
	"fmt"

	json "github.com/json-iterator/go"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/client"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/logger"
)

// GetAllPosts retrieves one page of the public memorial feed. Region and
// district are optional filter criteria; empty strings mean unfiltered.
func GetAllPosts(page, size int, region, district string) (*PostPage, error) {
	logger.Debug("Fetching posts", "page", page, "size", size, "region", region, "district", district)

	queryParams := map[string]string{
		"page": fmt.Sprintf("%d", page),
		"size": fmt.Sprintf("%d", size),
	}
	if region != "" {
		queryParams["region"] = region
	}
	if district != "" {
		queryParams["district"] = district
	}

	resp, err := client.GetClient().
		R().
		SetQueryParams(queryParams).
		Get("/posts/all")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var envelope struct {
		Data PostPage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

// GetMyPosts retrieves one page of the authenticated user's own posts
func GetMyPosts(page, size int) (*PostPage, error) {
	logger.Debug("Fetching my posts", "page", page, "size", size)

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page": fmt.Sprintf("%d", page),
			"size": fmt.Sprintf("%d", size),
		}).
		Get("/posts/my")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var envelope struct {
		Data PostPage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

// CreatePost creates a memorial post
func CreatePost(req CreatePostRequest) (*Post, error) {
	logger.Debug("Creating post", "full_name", req.FullName)

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/posts")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var envelope struct {
		Data Post `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

// LikePost likes a post and returns the authoritative like count
func LikePost(postID int64) (int, error) {
	logger.Debug("Liking post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/posts/%d/like", postID))

	if err := CheckResponse(resp, err); err != nil {
		return 0, err
	}

	var envelope struct {
		Data struct {
			LikeCount int `json:"likeCount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return 0, err
	}

	return envelope.Data.LikeCount, nil
}

// UnlikePost removes a like and returns the authoritative like count
func UnlikePost(postID int64) (int, error) {
	logger.Debug("Unliking post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/posts/%d/like", postID))

	if err := CheckResponse(resp, err); err != nil {
		return 0, err
	}

	var envelope struct {
		Data struct {
			LikeCount int `json:"likeCount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return 0, err
	}

	return envelope.Data.LikeCount, nil
}

// AddComment submits a comment; the broker later echoes it on the
// comments topic carrying the same clientKey
func AddComment(postID int64, req AddCommentRequest) (*Comment, error) {
	logger.Debug("Adding comment", "post_id", postID)

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(fmt.Sprintf("/posts/%d/comments", postID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var envelope struct {
		Data Comment `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, err
	}

	return &envelope.Data, nil
}

// GetComments retrieves one page of a post's comments
func GetComments(postID int64, page, size int) ([]Comment, error) {
	logger.Debug("Fetching comments", "post_id", postID, "page", page)

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page": fmt.Sprintf("%d", page),
			"size": fmt.Sprintf("%d", size),
		}).
		Get(fmt.Sprintf("/posts/%d/comments", postID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var envelope struct {
		Data struct {
			Content []Comment `json:"content"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, err
	}

	return envelope.Data.Content, nil
}
