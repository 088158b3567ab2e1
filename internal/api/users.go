// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package api

import (
	"context"

	"github.com/storm-lzy/oxex-horses/models"
)

// UsersService wraps the user and occupation endpoints.
type UsersService struct {
	client Requester
}

// Profile fetches the authenticated account's profile.
func (s *UsersService) Profile(ctx context.Context) (models.User, error) {
	var u models.User
	err := s.client.Get(ctx, "/user/profile", nil, &u)
	return u, err
}

// UpdateProfile pushes mutable profile fields.
func (s *UsersService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	return s.client.Put(ctx, "/user/profile", req, nil)
}

// Occupations lists the selectable occupation categories.
func (s *UsersService) Occupations(ctx context.Context) ([]models.Occupation, error) {
	var list []models.Occupation
	err := s.client.Get(ctx, "/occupations", nil, &list)
	return list, err
}

// AvatarUploadURL requests a pre-signed upload slot for a new avatar.
func (s *UsersService) AvatarUploadURL(ctx context.Context, filename string) (models.PresignedUpload, error) {
	var p models.PresignedUpload
	err := s.client.Post(ctx, "/user/avatar", models.PresignRequest{Filename: filename}, &p)
	return p, err
}
