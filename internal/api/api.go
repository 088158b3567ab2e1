// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

// Package api contains the typed domain wrappers over the request
// facade. Every function is a pure pass-through: it names an endpoint,
// hands the call to the facade, and resolves to the unwrapped payload.
// All failure handling (classification, notification, session
// invalidation) happens inside the facade.
package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/storm-lzy/oxex-horses/internal/adapter"
)

// Requester is the verb surface the wrappers depend on. Implemented by
// [adapter.Client]; kept minimal so wrappers can be exercised against a
// fake in tests.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values, out any, opts ...adapter.RequestOption) error
	Post(ctx context.Context, path string, body, out any, opts ...adapter.RequestOption) error
	Put(ctx context.Context, path string, body, out any, opts ...adapter.RequestOption) error
	Patch(ctx context.Context, path string, body, out any, opts ...adapter.RequestOption) error
	Delete(ctx context.Context, path string, out any, opts ...adapter.RequestOption) error
}

// API groups the end-user domain services.
type API struct {
	Users     *UsersService
	Posts     *PostsService
	Companies *CompaniesService
	Messages  *MessagesService
	Uploads   *UploadsService
}

// New wires all end-user services over one requester.
func New(c Requester) *API {
	return &API{
		Users:     &UsersService{client: c},
		Posts:     &PostsService{client: c},
		Companies: &CompaniesService{client: c},
		Messages:  &MessagesService{client: c},
		Uploads:   &UploadsService{client: c},
	}
}

// PageParams is the common paging selector.
type PageParams struct {
	Page int
	Size int
}

func (p PageParams) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		v.Set("size", strconv.Itoa(p.Size))
	}
	return v
}
