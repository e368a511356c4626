package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/gramtop961/aiduc-backend/internal/logger"
	"github.com/gramtop961/aiduc-backend/internal/repos"
	"github.com/gramtop961/aiduc-backend/internal/types"
)

const forumListMaxLimit = 100

type ForumService interface {
	CreatePost(ctx context.Context, post *types.ForumPost) (*types.ForumPost, error)
	ListPosts(ctx context.Context, limit int) ([]*types.ForumPost, error)
}

type forumService struct {
	db            *gorm.DB
	log           *logger.Logger
	forumPostRepo repos.ForumPostRepo
}

func NewForumService(db *gorm.DB, log *logger.Logger, forumPostRepo repos.ForumPostRepo) ForumService {
	serviceLog := log.With("service", "ForumService")
	return &forumService{db: db, log: serviceLog, forumPostRepo: forumPostRepo}
}

func (fs *forumService) CreatePost(ctx context.Context, post *types.ForumPost) (*types.ForumPost, error) {
	if fs.db == nil {
		return nil, fmt.Errorf("database not available")
	}

	created, err := fs.forumPostRepo.Create(ctx, nil, []*types.ForumPost{post})
	if err != nil {
		fs.log.Error("Failed to create forum post", "error", err)
		return nil, fmt.Errorf("error creating forum post: %w", err)
	}
	return created[0], nil
}

func (fs *forumService) ListPosts(ctx context.Context, limit int) ([]*types.ForumPost, error) {
	if fs.db == nil {
		return nil, fmt.Errorf("database not available")
	}

	posts, err := fs.forumPostRepo.List(ctx, nil, clampListLimit(limit))
	if err != nil {
		fs.log.Error("Failed to list forum posts", "error", err)
		return nil, fmt.Errorf("error listing forum posts: %w", err)
	}
	return posts, nil
}

// clampListLimit keeps page sizes inside [1,100].
func clampListLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > forumListMaxLimit {
		return forumListMaxLimit
	}
	return limit
}
