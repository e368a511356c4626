package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gramtop961/aiduc-backend/internal/logger"
	"github.com/gramtop961/aiduc-backend/internal/types"
)

type ForumPostRepo interface {
	Create(ctx context.Context, tx *gorm.DB, posts []*types.ForumPost) ([]*types.ForumPost, error)
	List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ForumPost, error)
}

type forumPostRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewForumPostRepo(db *gorm.DB, baseLog *logger.Logger) ForumPostRepo {
	repoLog := baseLog.With("repo", "ForumPostRepo")
	return &forumPostRepo{db: db, log: repoLog}
}

func (fr *forumPostRepo) Create(ctx context.Context, tx *gorm.DB, posts []*types.ForumPost) ([]*types.ForumPost, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	if len(posts) == 0 {
		return []*types.ForumPost{}, nil
	}

	for _, post := range posts {
		if post.ID == uuid.Nil {
			post.ID = uuid.New()
		}
	}

	if err := transaction.WithContext(ctx).Create(&posts).Error; err != nil {
		return nil, err
	}

	return posts, nil
}

func (fr *forumPostRepo) List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.ForumPost, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var results []*types.ForumPost

	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
