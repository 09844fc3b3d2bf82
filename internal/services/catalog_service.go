package services

import (
	"niknaks/internal/domain"
	"niknaks/internal/repos"
)

// PlaceholderImage backs products seeded without a gallery.
const PlaceholderImage = "https://images.unsplash.com/photo-1512446816042-444d641267d4?auto=format&fit=crop&w=900&q=80"

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

// ProductView is a product plus its gallery, ready for templates.
type ProductView struct {
	domain.Product
	Images    []domain.ProductImage
	HeroImage string
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) GetCategory(slug string) (domain.Category, error) {
	return s.Cats.GetBySlug(slug)
}

func (s *CatalogService) ListProducts(f repos.ProductFilter) ([]ProductView, error) {
	prods, err := s.Prods.List(f)
	if err != nil {
		return nil, err
	}
	return s.enrich(prods)
}

// ListSeasonal filters the default listing down to seasonal pieces.
func (s *CatalogService) ListSeasonal() ([]ProductView, error) {
	prods, err := s.Prods.List(repos.ProductFilter{})
	if err != nil {
		return nil, err
	}
	seasonal := prods[:0]
	for _, p := range prods {
		if p.Seasonal {
			seasonal = append(seasonal, p)
		}
	}
	return s.enrich(seasonal)
}

func (s *CatalogService) GetProduct(slug string) (ProductView, error) {
	p, err := s.Prods.GetBySlug(slug)
	if err != nil {
		return ProductView{}, err
	}
	views, err := s.enrich([]domain.Product{p})
	if err != nil {
		return ProductView{}, err
	}
	return views[0], nil
}

// Related returns up to max other pieces from the same category.
func (s *CatalogService) Related(p domain.Product, max int) ([]ProductView, error) {
	prods, err := s.Prods.List(repos.ProductFilter{CategorySlug: p.CategorySlug})
	if err != nil {
		return nil, err
	}
	others := []domain.Product{}
	for _, cand := range prods {
		if cand.Slug == p.Slug {
			continue
		}
		others = append(others, cand)
		if len(others) == max {
			break
		}
	}
	return s.enrich(others)
}

// Availability reports the stock status of a piece for the JSON API.
func (s *CatalogService) Availability(slug string) (domain.AvailabilityInfo, error) {
	p, err := s.Prods.GetBySlug(slug)
	if err != nil {
		return domain.AvailabilityInfo{}, err
	}
	info := domain.AvailabilityInfo{Status: p.Availability}
	if p.MadeToOrder {
		info.Lead = "2-3 weeks"
	}
	return info, nil
}

func (s *CatalogService) enrich(prods []domain.Product) ([]ProductView, error) {
	out := make([]ProductView, 0, len(prods))
	for _, p := range prods {
		imgs, err := s.Prods.Images(p.ID)
		if err != nil {
			return nil, err
		}
		v := ProductView{Product: p, Images: imgs, HeroImage: PlaceholderImage}
		if len(imgs) > 0 {
			v.HeroImage = imgs[0].ImageURL
		}
		out = append(out, v)
	}
	return out, nil
}
