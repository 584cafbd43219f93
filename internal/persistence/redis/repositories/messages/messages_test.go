package messages_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/sg41/internal/core/entities/message"
	"github.com/sergeii/sg41/internal/persistence/redis/repositories/messages"
	tu "github.com/sergeii/sg41/internal/testutils"
	"github.com/sergeii/sg41/internal/testutils/factories/messagefactory"
	"github.com/sergeii/sg41/internal/testutils/testredis"
)

func TestMessagesRedisRepo_AddAndList(t *testing.T) {
	ctx := context.TODO()
	rdb := testredis.MakeClient(t)
	repo := messages.New(rdb, messages.Opts{Capacity: 10})

	first := messagefactory.Create(ctx, repo)
	second := messagefactory.Create(
		ctx,
		repo,
		messagefactory.WithKey("other"),
		messagefactory.WithDirection(message.Decrypt),
		messagefactory.WithIndicator("Z Z X X 24 57"),
		messagefactory.WithText("FOO", "BAR"),
	)

	items, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// newest first
	got := items[0]
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, "other", got.KeySlug)
	assert.Equal(t, message.Decrypt, got.Direction)
	assert.Equal(t, "Z Z X X 24 57", got.Indicator.String())
	assert.Equal(t, "FOO", got.Input)
	assert.Equal(t, "BAR", got.Output)
	assert.True(t, second.CreatedAt.Equal(got.CreatedAt))

	got = items[1]
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "reference", got.KeySlug)
	assert.Equal(t, message.Encrypt, got.Direction)
	assert.Equal(t, tu.ReferenceIndicator, got.Indicator.String())
	assert.Equal(t, tu.ReferencePlaintext, got.Input)
	assert.Equal(t, tu.ReferenceCiphertext, got.Output)
}

func TestMessagesRedisRepo_List_Limit(t *testing.T) {
	ctx := context.TODO()
	rdb := testredis.MakeClient(t)
	repo := messages.New(rdb, messages.Opts{Capacity: 10})

	for i := range 5 {
		messagefactory.Create(ctx, repo, messagefactory.WithText(fmt.Sprintf("IN%c", 'A'+i), "OUT"))
	}

	items, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "INE", items[0].Input)
	assert.Equal(t, "IND", items[1].Input)

	items, err = repo.List(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestMessagesRedisRepo_Capacity(t *testing.T) {
	ctx := context.TODO()
	rdb := testredis.MakeClient(t)
	repo := messages.New(rdb, messages.Opts{Capacity: 3})

	for i := range 5 {
		messagefactory.Create(ctx, repo, messagefactory.WithText(fmt.Sprintf("IN%c", 'A'+i), "OUT"))
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	items, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "INE", items[0].Input)
	assert.Equal(t, "INC", items[2].Input)
}

func TestMessagesRedisRepo_Unbounded(t *testing.T) {
	ctx := context.TODO()
	rdb := testredis.MakeClient(t)
	repo := messages.New(rdb, messages.Opts{})

	for range 20 {
		messagefactory.Create(ctx, repo)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, count)
}

func TestMessagesRedisRepo_List_Corrupt(t *testing.T) {
	ctx := context.TODO()
	rdb := testredis.MakeClient(t)
	repo := messages.New(rdb, messages.Opts{Capacity: 10})

	tu.Must(rdb.LPush(ctx, "messages:journal", `{"id":"foo","direction":"sideways","positions":[0,0,0,0,0,0]}`).Result())
	_, err := repo.List(ctx, 0)
	assert.ErrorIs(t, err, message.ErrUnknownDirection)
}
