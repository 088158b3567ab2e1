// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package models

// OccupationStat is the per-occupation post count on the admin dashboard.
type OccupationStat struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DailyCount is one point of a per-day activity series.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DashboardTotals holds the headline counters of the admin dashboard.
type DashboardTotals struct {
	Users     int64 `json:"users"`
	Posts     int64 `json:"posts"`
	Companies int64 `json:"companies"`
	Comments  int64 `json:"comments"`
}

// DashboardStats is the full payload of the admin statistics endpoint.
type DashboardStats struct {
	OccupationStats []OccupationStat `json:"occupation_stats"`
	UserTrend       []DailyCount     `json:"user_trend"`
	PostTrend       []DailyCount     `json:"post_trend"`
	CompanyTrend    []DailyCount     `json:"company_trend"`
	Totals          DashboardTotals  `json:"totals"`
}

// UserList is a page of users as shown in the admin console.
type UserList struct {
	List  []User `json:"list"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
}
