// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package models

// User represents an account entity as returned by the backend.
// It is a read-mostly projection: the session layer owns the current
// user value and refreshes it via explicit profile fetches.
type User struct {
	// ID is the unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login identifier chosen at registration.
	Username string `json:"username"`

	// Nickname is the mutable display name shown alongside posts.
	Nickname string `json:"nickname"`

	// Avatar is the URL of the user's avatar image, if any.
	Avatar string `json:"avatar"`

	// OccupationID references the occupation the user selected.
	OccupationID int64 `json:"occupation_id"`

	// Occupation is the expanded occupation record when the backend
	// chose to embed it.
	Occupation *Occupation `json:"occupation,omitempty"`

	// Level is the numeric progression level, 1 through 5.
	Level int `json:"level"`

	// Exp is the accumulated experience backing Level.
	Exp int `json:"exp"`

	// Role is the account role: "user", "admin" or "super_admin".
	Role string `json:"role"`

	// Status is the account status: 1 active, 0 banned.
	Status int `json:"status"`

	// CreatedAt is the account creation timestamp in the backend's
	// string representation.
	CreatedAt string `json:"created_at"`
}

// Occupation is a selectable occupation category.
type Occupation struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the payload of a successful login: the bearer token
// plus the authenticated user's projection.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest carries the fields for POST /auth/register.
// Registration does not authenticate the new account; a separate login
// is required afterwards.
type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	OccupationID int64  `json:"occupation_id"`
}

// UpdateProfileRequest carries the mutable profile fields. Zero-valued
// fields are omitted and left unchanged by the backend.
type UpdateProfileRequest struct {
	Nickname     string `json:"nickname,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	OccupationID int64  `json:"occupation_id,omitempty"`
}

// LevelNames maps progression levels to their display labels.
var LevelNames = map[int]string{
	1: "Workhorse",
	2: "Grinding Workhorse",
	3: "Elite Workhorse",
	4: "Chosen Workhorse",
	5: "Nuclear Workhorse",
}

// GetLevelName returns the display label for level, falling back to the
// level-1 label for unknown values.
func GetLevelName(level int) string {
	if name, ok := LevelNames[level]; ok {
		return name
	}
	return LevelNames[1]
}

// LevelName returns the display label for the user's current level.
func (u User) LevelName() string {
	return GetLevelName(u.Level)
}
