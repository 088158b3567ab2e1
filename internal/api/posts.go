// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/storm-lzy/oxex-horses/models"
)

// PostsService wraps the forum post and comment endpoints.
type PostsService struct {
	client Requester
}

// PostListParams selects a page of posts, optionally filtered by
// occupation.
type PostListParams struct {
	OccupationID int64
	PageParams
}

func (p PostListParams) values() url.Values {
	v := p.PageParams.values()
	if p.OccupationID > 0 {
		v.Set("occupation_id", strconv.FormatInt(p.OccupationID, 10))
	}
	return v
}

// List fetches a page of posts.
func (s *PostsService) List(ctx context.Context, params PostListParams) (models.PostList, error) {
	var out models.PostList
	err := s.client.Get(ctx, "/posts", params.values(), &out)
	return out, err
}

// Get fetches one post with the caller's like/favorite relation.
func (s *PostsService) Get(ctx context.Context, id int64) (models.PostDetail, error) {
	var out models.PostDetail
	err := s.client.Get(ctx, fmt.Sprintf("/posts/%d", id), nil, &out)
	return out, err
}

// Create publishes a new post.
func (s *PostsService) Create(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	var out models.Post
	err := s.client.Post(ctx, "/posts", req, &out)
	return out, err
}

// Update edits an existing post.
func (s *PostsService) Update(ctx context.Context, id int64, req models.UpdatePostRequest) error {
	return s.client.Put(ctx, fmt.Sprintf("/posts/%d", id), req, nil)
}

// Delete removes a post.
func (s *PostsService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/posts/%d", id), nil)
}

// Like marks the post as liked by the caller.
func (s *PostsService) Like(ctx context.Context, id int64) error {
	return s.client.Post(ctx, fmt.Sprintf("/posts/%d/like", id), nil, nil)
}

// Unlike removes the caller's like.
func (s *PostsService) Unlike(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/posts/%d/like", id), nil)
}

// Favorite adds the post to the caller's favorites.
func (s *PostsService) Favorite(ctx context.Context, id int64) error {
	return s.client.Post(ctx, fmt.Sprintf("/posts/%d/favorite", id), nil, nil)
}

// Unfavorite removes the post from the caller's favorites.
func (s *PostsService) Unfavorite(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/posts/%d/favorite", id), nil)
}

// Comments fetches a page of comments for a post.
func (s *PostsService) Comments(ctx context.Context, postID int64, page PageParams) (models.CommentList, error) {
	var out models.CommentList
	err := s.client.Get(ctx, fmt.Sprintf("/posts/%d/comments", postID), page.values(), &out)
	return out, err
}

// CreateComment adds a comment (or a reply when ParentID is set).
func (s *PostsService) CreateComment(ctx context.Context, postID int64, req models.CreateCommentRequest) (models.Comment, error) {
	var out models.Comment
	err := s.client.Post(ctx, fmt.Sprintf("/posts/%d/comments", postID), req, &out)
	return out, err
}

// DeleteComment removes a comment.
func (s *PostsService) DeleteComment(ctx context.Context, commentID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/comments/%d", commentID), nil)
}
