package messages

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sergeii/sg41/internal/core/entities/indicator"
	"github.com/sergeii/sg41/internal/core/entities/message"
)

const journalKey = "messages:journal"

type Opts struct {
	// the number of most recent messages kept in the journal
	Capacity int
}

type Repository struct {
	client *redis.Client
	opts   Opts
}

type storedMessage struct {
	ID        string    `json:"id"`
	KeySlug   string    `json:"key"`
	Direction string    `json:"direction"`
	Positions []int     `json:"positions"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}

func New(client *redis.Client, opts Opts) *Repository {
	return &Repository{
		client: client,
		opts:   opts,
	}
}

func (r *Repository) Add(ctx context.Context, msg message.Message) error {
	item, err := json.Marshal(storedMessage{
		ID:        msg.ID,
		KeySlug:   msg.KeySlug,
		Direction: msg.Direction.String(),
		Positions: msg.Indicator.Positions(),
		Input:     msg.Input,
		Output:    msg.Output,
		CreatedAt: msg.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, journalKey, item)
		if r.opts.Capacity > 0 {
			pipe.LTrim(ctx, journalKey, 0, int64(r.opts.Capacity-1))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to journal message: %w", err)
	}

	return nil
}

// List returns up to limit most recent messages, newest first.
// A non-positive limit returns the whole journal.
func (r *Repository) List(ctx context.Context, limit int) ([]message.Message, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	values, err := r.client.LRange(ctx, journalKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	items := make([]message.Message, 0, len(values))
	for _, value := range values {
		msg, decodeErr := decodeMessage(value)
		if decodeErr != nil {
			return nil, decodeErr
		}
		items = append(items, msg)
	}

	return items, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.client.LLen(ctx, journalKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return int(count), nil
}

func decodeMessage(value string) (message.Message, error) {
	var item storedMessage
	if err := json.Unmarshal([]byte(value), &item); err != nil {
		return message.Blank, fmt.Errorf("failed to unmarshal message: %w", err)
	}
	direction, err := message.ParseDirection(item.Direction)
	if err != nil {
		return message.Blank, fmt.Errorf("stored message %s is corrupt: %w", item.ID, err)
	}
	ind, err := indicator.New(item.Positions)
	if err != nil {
		return message.Blank, fmt.Errorf("stored message %s is corrupt: %w", item.ID, err)
	}
	return message.Message{
		ID:        item.ID,
		KeySlug:   item.KeySlug,
		Direction: direction,
		Indicator: ind,
		Input:     item.Input,
		Output:    item.Output,
		CreatedAt: item.CreatedAt,
	}, nil
}
