// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package api

import (
	"context"

	"github.com/storm-lzy/oxex-horses/models"
)

// UploadsService wraps the pre-signed object-storage endpoints.
type UploadsService struct {
	client Requester
}

// Presign requests a pre-signed upload slot for an arbitrary file.
func (s *UploadsService) Presign(ctx context.Context, req models.PresignRequest) (models.PresignedUpload, error) {
	var out models.PresignedUpload
	err := s.client.Post(ctx, "/upload/presign", req, &out)
	return out, err
}
