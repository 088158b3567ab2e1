// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package api

import (
	"context"
	"strconv"

	"github.com/storm-lzy/oxex-horses/models"
)

// MessagesService wraps the private messaging endpoints.
type MessagesService struct {
	client Requester
}

// Conversations lists the caller's active conversations.
func (s *MessagesService) Conversations(ctx context.Context) (models.ConversationList, error) {
	var out models.ConversationList
	err := s.client.Get(ctx, "/messages", nil, &out)
	return out, err
}

// With fetches a page of the message history with one peer.
func (s *MessagesService) With(ctx context.Context, userID int64, page PageParams) (models.MessageList, error) {
	v := page.values()
	v.Set("user_id", strconv.FormatInt(userID, 10))

	var out models.MessageList
	err := s.client.Get(ctx, "/messages", v, &out)
	return out, err
}

// Send delivers a private message to a peer.
func (s *MessagesService) Send(ctx context.Context, req models.SendMessageRequest) (models.Message, error) {
	var out models.Message
	err := s.client.Post(ctx, "/messages", req, &out)
	return out, err
}

// UnreadCount returns the caller's total number of unread messages.
func (s *MessagesService) UnreadCount(ctx context.Context) (models.UnreadCount, error) {
	var out models.UnreadCount
	err := s.client.Get(ctx, "/messages/unread", nil, &out)
	return out, err
}

// MarkRead marks all messages from one sender as read.
func (s *MessagesService) MarkRead(ctx context.Context, senderID int64) error {
	return s.client.Post(ctx, "/messages/read", models.MarkReadRequest{SenderID: senderID}, nil)
}
