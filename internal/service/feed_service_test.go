package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	"github.com/elpescadoreric/angler-tournament-app/internal/store"
)

func TestFeedServiceCreatePost(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewFeedService(st, validator.New(), zap.NewNop())

	post, err := svc.CreatePost(context.Background(), "reeldeal", CreatePostRequest{
		Text:     "Limit of kings before 9am!",
		MediaRef: "kings.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "reeldeal", post.Author)
	assert.NotEmpty(t, post.ID)

	posts := svc.ListPosts(context.Background())
	require.Len(t, posts, 1)
	assert.Equal(t, post.ID, posts[0].ID)
}

func TestFeedServiceCreatePostValidation(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewFeedService(st, validator.New(), zap.NewNop())

	_, err := svc.CreatePost(context.Background(), "reeldeal", CreatePostRequest{Text: ""})
	require.Error(t, err)

	_, err = svc.CreatePost(context.Background(), "reeldeal", CreatePostRequest{
		Text: strings.Repeat("x", 2001),
	})
	require.Error(t, err)
}

func TestFeedServiceListNewestFirstCapped(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewFeedService(st, validator.New(), zap.NewNop())

	for i := 0; i < models.FeedLimit+5; i++ {
		_, err := svc.CreatePost(context.Background(), "reeldeal", CreatePostRequest{
			Text: fmt.Sprintf("post %d", i),
		})
		require.NoError(t, err)
	}

	posts := svc.ListPosts(context.Background())
	require.Len(t, posts, models.FeedLimit)
	assert.Equal(t, fmt.Sprintf("post %d", models.FeedLimit+4), posts[0].Text)
}
