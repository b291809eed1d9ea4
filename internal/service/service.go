package service

import (
	"go.uber.org/zap"

	"blogsphere/internal/config"
	"blogsphere/internal/database"
	"blogsphere/internal/repository"
	"blogsphere/internal/storage"
)

type Service struct {
	Comment    CommentService
	Feed       FeedService
	Engagement EngagementService
	Post       PostService
	Profile    ProfileService
	Suggest    SuggestService
	Tables     TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, pinger database.Pinger, log *zap.Logger) *Service {
	return &Service{
		Comment:    NewCommentService(rep.Comment, rep.Post, log),
		Feed:       NewFeedService(rep.Post, rep.Engagement, cfg.Feed, log),
		Engagement: NewEngagementService(rep.Engagement, log),
		Post:       NewPostService(rep.Post, rep.Engagement, storage, cfg.MaxUploadSize, log),
		Profile:    NewProfileService(rep.Profile, storage, cfg.MaxUploadSize, log),
		Suggest:    NewSuggestService(),
		Tables:     NewTablesService(rep.Tables, pinger),
	}
}
