// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package models

// PresignRequest asks the backend for a pre-signed object-storage URL.
type PresignRequest struct {
	Filename string `json:"filename"`
	FileType string `json:"file_type,omitempty"`
}

// PresignedUpload is the pre-signed upload slot returned by the backend.
// The client PUTs the file to UploadURL and references it via AccessURL.
type PresignedUpload struct {
	UploadURL string `json:"upload_url"`
	AccessURL string `json:"access_url"`
	ObjectKey string `json:"object_key"`
}
