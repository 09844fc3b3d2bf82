package handlers

import (
	"niknaks/internal/repos"
	"niknaks/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	ShopHandler         *ShopHandler
	PageHandler         *PageHandler
	MediaHandler        *MediaHandler
	CustomHandler       *CustomHandler
	CheckoutHandler     *CheckoutHandler
	AvailabilityHandler *AvailabilityHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	reviewRepo := repos.NewReviewRepo(db)
	cityRepo := repos.NewCityRepo(db)
	videoRepo := repos.NewVideoRepo(db)
	intakeRepo := repos.NewIntakeRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	contentSvc := services.NewContentService(reviewRepo, cityRepo)
	mediaSvc := services.NewMediaService(videoRepo)
	intakeSvc := services.NewIntakeService(intakeRepo)

	return &Deps{
		ShopHandler:         &ShopHandler{Catalog: catalogSvc},
		PageHandler:         &PageHandler{Catalog: catalogSvc, Content: contentSvc, Intake: intakeSvc},
		MediaHandler:        &MediaHandler{Media: mediaSvc},
		CustomHandler:       &CustomHandler{Catalog: catalogSvc, Intake: intakeSvc},
		CheckoutHandler:     &CheckoutHandler{},
		AvailabilityHandler: &AvailabilityHandler{Catalog: catalogSvc},
	}
}
