package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
)

type feedStore interface {
	AppendPost(ctx context.Context, post models.SocialPost)
	ListPosts(ctx context.Context, limit int) []models.SocialPost
}

// FeedService owns the append-only social feed.
type FeedService struct {
	store     feedStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFeedService constructs the service.
func NewFeedService(st feedStore, validate *validator.Validate, logger *zap.Logger) *FeedService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedService{store: st, validator: validate, logger: logger}
}

// CreatePostRequest is the feed post payload.
type CreatePostRequest struct {
	Text     string `json:"text" validate:"required,max=2000"`
	MediaRef string `json:"media_ref,omitempty"`
}

// CreatePost appends a post authored by the authenticated account. Posts
// cannot be edited or deleted afterwards.
func (s *FeedService) CreatePost(ctx context.Context, author string, req CreatePostRequest) (*models.SocialPost, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid post payload")
	}

	post := models.SocialPost{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      req.Text,
		MediaRef:  req.MediaRef,
		CreatedAt: time.Now().UTC(),
	}
	s.store.AppendPost(ctx, post)
	return &post, nil
}

// ListPosts returns the most recent posts, newest first, capped to the feed
// limit.
func (s *FeedService) ListPosts(ctx context.Context) []models.SocialPost {
	return s.store.ListPosts(ctx, models.FeedLimit)
}
