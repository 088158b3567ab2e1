// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package models

// Company is a reviewed company entry on the warning wall.
type Company struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Tags      []string `json:"tags"`
	RiskLevel int      `json:"risk_level"`
	Evidence  []string `json:"evidence"`
	Content   string   `json:"content"`
	CreatorID int64    `json:"creator_id"`
	Creator   *User    `json:"creator,omitempty"`
	Status    int      `json:"status"`
	ViewCount int64    `json:"view_count"`
	CreatedAt string   `json:"created_at"`
}

// CompanyList is a page of companies.
type CompanyList struct {
	List  []Company `json:"list"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Size  int       `json:"size"`
}

// CompanySearchResult is a company page scoped to a search keyword.
type CompanySearchResult struct {
	CompanyList
	Keyword string `json:"keyword"`
}

// CreateCompanyRequest carries the fields for submitting a company entry.
type CreateCompanyRequest struct {
	Name      string   `json:"name"`
	City      string   `json:"city"`
	Tags      []string `json:"tags"`
	RiskLevel int      `json:"risk_level"`
	Evidence  []string `json:"evidence"`
	Content   string   `json:"content"`
}
