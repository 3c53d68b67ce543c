package api

import "time"

// Auth request/response types. The backend wraps every payload in a
// {"data": ...} envelope.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyAccountRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// Author is the account summary attached to posts and comments
type Author struct {
	ID       string   `json:"id"`
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles,omitempty"`
	Photo    string   `json:"photo"`
}

// Post is a memorial record as returned by the listing endpoints.
// Birth/death dates are DD.MM.YYYY strings, matching the backend.
type Post struct {
	ID            int64   `json:"id"`
	FullName      string  `json:"fullName"`
	ProfilePhoto  string  `json:"profilePhoto"`
	BirthDate     string  `json:"birthDate"`
	DeathDate     string  `json:"deathDate"`
	Definition    string  `json:"definition"`
	LikeCount     int     `json:"likeCount"`
	CommentsCount int     `json:"commentsCount"`
	IsLiked       bool    `json:"isLiked"`
	ShareLink     string  `json:"shareLink"`
	AccessType    string  `json:"accessType,omitempty"`
	BirthAddress  string  `json:"birthAddress,omitempty"`
	Cemetery      string  `json:"cemetery,omitempty"`
	GraveNumber   string  `json:"graveNumber,omitempty"`
	Latitude      string  `json:"latitude,omitempty"`
	Longitude     string  `json:"longitude,omitempty"`
	QRCodePhoto   string  `json:"qrCodePhoto,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
	CreatedBy     *Author `json:"createdBy,omitempty"`
}

// PostPage is one page of the paginated listing. Last signals pagination
// exhaustion; Number is the zero-based page index.
type PostPage struct {
	Content       []Post `json:"content"`
	Last          bool   `json:"last"`
	Number        int    `json:"number"`
	TotalElements int64  `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
}

// CreatePostRequest creates a memorial post. ProfilePhoto carries the
// stored path returned by the file upload endpoint.
type CreatePostRequest struct {
	FullName     string `json:"fullName"`
	BirthDate    string `json:"birthDate"`
	DeathDate    string `json:"deathDate"`
	Definition   string `json:"definition"`
	ProfilePhoto string `json:"profilePhoto"`
	AccessType   string `json:"accessType"`
	BirthAddress string `json:"birthAddress,omitempty"`
	Cemetery     string `json:"cemetery,omitempty"`
	GraveNumber  string `json:"graveNumber,omitempty"`
	Latitude     string `json:"latitude,omitempty"`
	Longitude    string `json:"longitude,omitempty"`
}

// Comment on a memorial post. ClientKey is the client-generated
// idempotency key used to collapse broker echoes of local submissions.
type CommentAuthor struct {
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
}

type Comment struct {
	ID        int64         `json:"id"`
	PostID    int64         `json:"postId"`
	Text      string        `json:"text"`
	ClientKey string        `json:"clientKey,omitempty"`
	Author    CommentAuthor `json:"author"`
	CreatedAt time.Time     `json:"createdAt"`
}

type AddCommentRequest struct {
	Text      string `json:"text"`
	ClientKey string `json:"clientKey"`
}

// Cemetery as returned by the cemeteries select endpoint
type Cemetery struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Region   string `json:"region"`
	District string `json:"district"`
}

// User is the authenticated account from /users/me
type User struct {
	ID       string   `json:"id"`
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
	Photo    string   `json:"photo"`
}

// UploadedFile is the stored-path result of a file upload
type UploadedFile struct {
	Path string `json:"path"`
}

// ErrorResponse is the backend's error envelope
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
