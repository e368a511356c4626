package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/gramtop961/aiduc-backend/internal/services"
	"github.com/gramtop961/aiduc-backend/internal/types"
)

type ForumHandler struct {
	forumService services.ForumService
}

func NewForumHandler(forumService services.ForumService) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

type ForumPostCreateRequest struct {
	Title         string   `json:"title" binding:"required"`
	Content       string   `json:"content" binding:"required"`
	Author        string   `json:"author" binding:"required"`
	Tags          []string `json:"tags"`
	LargeText     bool     `json:"large_text"`
	HasAudio      bool     `json:"has_audio"`
	Subtitles     bool     `json:"subtitles"`
	AudioURL      *string  `json:"audio_url"`
	AttachmentURL *string  `json:"attachment_url"`
}

func (fh *ForumHandler) Create(c *gin.Context) {
	var req ForumPostCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	post := &types.ForumPost{
		Title:         req.Title,
		Content:       req.Content,
		Author:        req.Author,
		Tags:          datatypes.NewJSONSlice(tags),
		LargeText:     req.LargeText,
		HasAudio:      req.HasAudio,
		Subtitles:     req.Subtitles,
		AudioURL:      req.AudioURL,
		AttachmentURL: req.AttachmentURL,
	}

	created, err := fh.forumService.CreatePost(c.Request.Context(), post)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "forum_create_failed", err)
		return
	}
	RespondOK(c, created)
}

func (fh *ForumHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	posts, err := fh.forumService.ListPosts(c.Request.Context(), limit)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "forum_list_failed", err)
		return
	}
	if posts == nil {
		posts = []*types.ForumPost{}
	}
	RespondOK(c, posts)
}
