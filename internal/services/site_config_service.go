package services

import (
	"context"
	"fmt"

	"github.com/homez-ar/api/internal/logger"
	"github.com/homez-ar/api/internal/models"
	"github.com/homez-ar/api/internal/repository"
)

// SiteConfigService exposes the single-row site configuration. Reads never
// fail on an empty table; the repository substitutes the seed record.
type SiteConfigService interface {
	Get(ctx context.Context) (*models.SiteConfig, error)
	Update(ctx context.Context, cfg *models.SiteConfig) (*models.SiteConfig, error)
}

type siteConfigService struct {
	repo repository.SiteConfigRepository
	log  *logger.Logger
}

// NewSiteConfigService creates a new SiteConfigService instance.
func NewSiteConfigService(repo repository.SiteConfigRepository, log *logger.Logger) SiteConfigService {
	return &siteConfigService{repo: repo, log: log}
}

func (s *siteConfigService) Get(ctx context.Context) (*models.SiteConfig, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load site config: %w", err)
	}
	return cfg, nil
}

func (s *siteConfigService) Update(ctx context.Context, cfg *models.SiteConfig) (*models.SiteConfig, error) {
	// The table holds exactly one row; every save targets it.
	cfg.ID = "default"
	if cfg.CompanyName == "" {
		cfg.CompanyName = models.DefaultSiteConfig().CompanyName
	}

	saved, err := s.repo.Upsert(ctx, cfg)
	if err != nil {
		s.log.Error("Failed to save site config", err, nil)
		return nil, fmt.Errorf("failed to save site config: %w", err)
	}

	s.log.Info("Site config updated", map[string]interface{}{
		"company_name": saved.CompanyName,
	})
	return saved, nil
}
