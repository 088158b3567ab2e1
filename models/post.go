// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package models

// Post is a forum post.
type Post struct {
	ID           int64       `json:"id"`
	UserID       int64       `json:"user_id"`
	User         *User       `json:"user,omitempty"`
	OccupationID int64       `json:"occupation_id"`
	Occupation   *Occupation `json:"occupation,omitempty"`
	Title        string      `json:"title"`
	Content      string      `json:"content"`
	LikesCount   int64       `json:"likes_count"`
	ViewsCount   int64       `json:"views_count"`
	Status       int         `json:"status"`
	CreatedAt    string      `json:"created_at"`
}

// PostList is a page of posts.
type PostList struct {
	List  []Post `json:"list"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
}

// PostDetail is a single post together with the caller's relation to it.
type PostDetail struct {
	Post        Post `json:"post"`
	IsLiked     bool `json:"is_liked"`
	IsFavorited bool `json:"is_favorited"`
}

// CreatePostRequest carries the fields for creating a post.
type CreatePostRequest struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	OccupationID int64  `json:"occupation_id"`
}

// UpdatePostRequest carries the mutable post fields; zero values are
// omitted and left unchanged.
type UpdatePostRequest struct {
	Title        string `json:"title,omitempty"`
	Content      string `json:"content,omitempty"`
	OccupationID int64  `json:"occupation_id,omitempty"`
}

// Comment is a comment on a post, optionally replying to another comment.
type Comment struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"post_id"`
	UserID    int64  `json:"user_id"`
	User      *User  `json:"user,omitempty"`
	ParentID  int64  `json:"parent_id,omitempty"`
	Content   string `json:"content"`
	Status    int    `json:"status"`
	CreatedAt string `json:"created_at"`
}

// CommentList is a page of comments.
type CommentList struct {
	List  []Comment `json:"list"`
	Total int64     `json:"total"`
}

// CreateCommentRequest carries the fields for creating a comment.
type CreateCommentRequest struct {
	Content  string `json:"content"`
	ParentID int64  `json:"parent_id,omitempty"`
}
