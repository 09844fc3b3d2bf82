package services

import (
	"niknaks/internal/domain"
	"niknaks/internal/repos"
)

// ContentService serves the editorial side of the site: reviews and the
// city/location pages.
type ContentService struct {
	Reviews *repos.ReviewRepo
	Cities  *repos.CityRepo
}

func NewContentService(reviews *repos.ReviewRepo, cities *repos.CityRepo) *ContentService {
	return &ContentService{Reviews: reviews, Cities: cities}
}

func (s *ContentService) ListReviews(limit int) ([]domain.Review, error) {
	return s.Reviews.List(limit)
}

func (s *ContentService) ListCityPages() ([]domain.CityPage, error) {
	return s.Cities.List()
}

func (s *ContentService) GetCityPage(slug string) (domain.CityPage, error) {
	return s.Cities.GetBySlug(slug)
}
