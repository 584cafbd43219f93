package repositories

import (
	"context"

	"github.com/sergeii/sg41/internal/core/entities/message"
)

// MessageRepository is a bounded journal of processed messages, newest first.
type MessageRepository interface {
	Add(ctx context.Context, msg message.Message) error
	List(ctx context.Context, limit int) ([]message.Message, error)
	Count(ctx context.Context) (int, error)
}
