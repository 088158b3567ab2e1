// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package api

import (
	"context"
	"fmt"

	"github.com/storm-lzy/oxex-horses/models"
)

// CompaniesService wraps the company warning-wall endpoints.
type CompaniesService struct {
	client Requester
}

// List fetches a page of companies.
func (s *CompaniesService) List(ctx context.Context, page PageParams) (models.CompanyList, error) {
	var out models.CompanyList
	err := s.client.Get(ctx, "/companies", page.values(), &out)
	return out, err
}

// Search fetches a page of companies matching keyword.
func (s *CompaniesService) Search(ctx context.Context, keyword string, page PageParams) (models.CompanySearchResult, error) {
	v := page.values()
	v.Set("keyword", keyword)

	var out models.CompanySearchResult
	err := s.client.Get(ctx, "/companies/search", v, &out)
	return out, err
}

// Get fetches one company entry.
func (s *CompaniesService) Get(ctx context.Context, id int64) (models.Company, error) {
	var out models.Company
	err := s.client.Get(ctx, fmt.Sprintf("/companies/%d", id), nil, &out)
	return out, err
}

// Create submits a new company entry.
func (s *CompaniesService) Create(ctx context.Context, req models.CreateCompanyRequest) (models.Company, error) {
	var out models.Company
	err := s.client.Post(ctx, "/companies", req, &out)
	return out, err
}
