package entity

import "errors"

var (
	ErrInvalidConversation  = errors.New("invalid conversation")
	ErrInvalidMessage       = errors.New("invalid message")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrInvalidOverride      = errors.New("invalid site override")
	ErrOverrideNotFound     = errors.New("site override not found")
)
