// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 storm-lzy

package models

// MessagePeer is the reduced user projection embedded in messages and
// conversations.
type MessagePeer struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Level    int    `json:"level"`
}

// Message is a single private message between two users.
type Message struct {
	ID         int64        `json:"id"`
	SenderID   int64        `json:"sender_id"`
	ReceiverID int64        `json:"receiver_id"`
	Content    string       `json:"content"`
	IsRead     bool         `json:"is_read"`
	CreatedAt  string       `json:"created_at"`
	Sender     *MessagePeer `json:"sender,omitempty"`
	Receiver   *MessagePeer `json:"receiver,omitempty"`
}

// Conversation summarises the message history with one peer.
type Conversation struct {
	User        MessagePeer `json:"user"`
	LastMessage Message     `json:"last_message"`
	UnreadCount int64       `json:"unread_count"`
}

// ConversationList is the list of active conversations.
type ConversationList struct {
	List []Conversation `json:"list"`
}

// MessageList is a page of messages exchanged with one peer.
type MessageList struct {
	List  []Message `json:"list"`
	Total int64     `json:"total"`
}

// UnreadCount is the total number of unread messages.
type UnreadCount struct {
	Count int64 `json:"count"`
}

// MarkReadRequest marks all messages from one sender as read.
type MarkReadRequest struct {
	SenderID int64 `json:"sender_id"`
}

// SendMessageRequest carries the fields for sending a private message.
type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id"`
	Content    string `json:"content"`
}
