package services

import (
	"niknaks/internal/domain"
	"niknaks/internal/repos"
)

type MediaService struct {
	Videos *repos.VideoRepo
}

func NewMediaService(videos *repos.VideoRepo) *MediaService {
	return &MediaService{Videos: videos}
}

func (s *MediaService) VideoGroups() ([]domain.VideoGroup, error) {
	return s.Videos.ListGrouped()
}
