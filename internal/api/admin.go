// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package api

import (
	"context"
	"fmt"

	"github.com/storm-lzy/oxex-horses/models"
)

// AdminAPI groups the admin-console endpoints. It is wired over the
// admin deployment's facade, which holds a separate credential slot from
// the end-user client.
type AdminAPI struct {
	client Requester
}

// NewAdmin wires the admin service over one requester.
func NewAdmin(c Requester) *AdminAPI {
	return &AdminAPI{client: c}
}

// DashboardStats fetches the headline counters and activity trends.
func (a *AdminAPI) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var out models.DashboardStats
	err := a.client.Get(ctx, "/admin/dashboard/stats", nil, &out)
	return out, err
}

// Users fetches a page of accounts.
func (a *AdminAPI) Users(ctx context.Context, page PageParams) (models.UserList, error) {
	var out models.UserList
	err := a.client.Get(ctx, "/admin/users", page.values(), &out)
	return out, err
}

// BanUser disables an account.
func (a *AdminAPI) BanUser(ctx context.Context, id int64) error {
	return a.client.Post(ctx, fmt.Sprintf("/admin/users/%d/ban", id), nil, nil)
}

// UnbanUser re-enables an account.
func (a *AdminAPI) UnbanUser(ctx context.Context, id int64) error {
	return a.client.Post(ctx, fmt.Sprintf("/admin/users/%d/unban", id), nil, nil)
}

// Posts fetches a page of posts for moderation.
func (a *AdminAPI) Posts(ctx context.Context, page PageParams) (models.PostList, error) {
	var out models.PostList
	err := a.client.Get(ctx, "/admin/posts", page.values(), &out)
	return out, err
}

// DeletePost removes a post.
func (a *AdminAPI) DeletePost(ctx context.Context, id int64) error {
	return a.client.Delete(ctx, fmt.Sprintf("/admin/posts/%d", id), nil)
}

// TopPost pins a post to the top of the feed.
func (a *AdminAPI) TopPost(ctx context.Context, id int64) error {
	return a.client.Post(ctx, fmt.Sprintf("/admin/posts/%d/top", id), nil, nil)
}

// Companies fetches a page of company entries for moderation.
func (a *AdminAPI) Companies(ctx context.Context, page PageParams) (models.CompanyList, error) {
	var out models.CompanyList
	err := a.client.Get(ctx, "/admin/companies", page.values(), &out)
	return out, err
}

// DeleteCompany removes a company entry.
func (a *AdminAPI) DeleteCompany(ctx context.Context, id int64) error {
	return a.client.Delete(ctx, fmt.Sprintf("/admin/companies/%d", id), nil)
}
