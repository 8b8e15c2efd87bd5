package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/homez-ar/api/internal/database"
	"github.com/homez-ar/api/internal/models"
	"github.com/jackc/pgx/v5"
)

// SiteConfigRepository defines data access for the single-row CMS
// configuration record.
type SiteConfigRepository interface {
	// Get returns the stored configuration, or the default record when
	// nothing has been saved yet. Returns error only for database failures.
	Get(ctx context.Context) (*models.SiteConfig, error)

	// Upsert writes the configuration, creating the row on first save.
	Upsert(ctx context.Context, cfg *models.SiteConfig) (*models.SiteConfig, error)
}

type siteConfigRepository struct {
	db *database.Database
}

// NewSiteConfigRepository creates a new SiteConfigRepository instance.
func NewSiteConfigRepository(db *database.Database) SiteConfigRepository {
	return &siteConfigRepository{db: db}
}

const siteConfigColumns = `
	id, company_name, site_title, site_description, logo, favicon,
	address, schedule, phone, whatsapp, email,
	primary_color, secondary_color,
	hero_variant, hero_title, hero_subtitle, video_url,
	map_url, show_map,
	facebook, instagram, twitter, linkedin, youtube,
	about_title, about_content, contact_title, contact_text,
	appraisal_title, appraisal_text,
	created_at, updated_at`

func (r *siteConfigRepository) Get(ctx context.Context) (*models.SiteConfig, error) {
	query := `SELECT ` + siteConfigColumns + ` FROM site_config LIMIT 1`

	row := r.db.Pool.QueryRow(ctx, query)
	cfg, err := scanSiteConfig(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Nothing saved yet: serve the seed defaults.
			return models.DefaultSiteConfig(), nil
		}
		return nil, fmt.Errorf("failed to query site config: %w", err)
	}

	return cfg, nil
}

func (r *siteConfigRepository) Upsert(ctx context.Context, cfg *models.SiteConfig) (*models.SiteConfig, error) {
	query := `
		INSERT INTO site_config (
			id, company_name, site_title, site_description, logo, favicon,
			address, schedule, phone, whatsapp, email,
			primary_color, secondary_color,
			hero_variant, hero_title, hero_subtitle, video_url,
			map_url, show_map,
			facebook, instagram, twitter, linkedin, youtube,
			about_title, about_content, contact_title, contact_text,
			appraisal_title, appraisal_text,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13,
			$14, $15, $16, $17,
			$18, $19,
			$20, $21, $22, $23, $24,
			$25, $26, $27, $28,
			$29, $30,
			NOW(), NOW()
		)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			site_title = EXCLUDED.site_title,
			site_description = EXCLUDED.site_description,
			logo = EXCLUDED.logo,
			favicon = EXCLUDED.favicon,
			address = EXCLUDED.address,
			schedule = EXCLUDED.schedule,
			phone = EXCLUDED.phone,
			whatsapp = EXCLUDED.whatsapp,
			email = EXCLUDED.email,
			primary_color = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			hero_variant = EXCLUDED.hero_variant,
			hero_title = EXCLUDED.hero_title,
			hero_subtitle = EXCLUDED.hero_subtitle,
			video_url = EXCLUDED.video_url,
			map_url = EXCLUDED.map_url,
			show_map = EXCLUDED.show_map,
			facebook = EXCLUDED.facebook,
			instagram = EXCLUDED.instagram,
			twitter = EXCLUDED.twitter,
			linkedin = EXCLUDED.linkedin,
			youtube = EXCLUDED.youtube,
			about_title = EXCLUDED.about_title,
			about_content = EXCLUDED.about_content,
			contact_title = EXCLUDED.contact_title,
			contact_text = EXCLUDED.contact_text,
			appraisal_title = EXCLUDED.appraisal_title,
			appraisal_text = EXCLUDED.appraisal_text,
			updated_at = NOW()
		RETURNING ` + siteConfigColumns

	id := cfg.ID
	if id == "" {
		id = "default"
	}

	row := r.db.Pool.QueryRow(ctx, query,
		id, cfg.CompanyName, cfg.SiteTitle, cfg.SiteDescription, cfg.Logo, cfg.Favicon,
		cfg.Address, cfg.Schedule, cfg.Phone, cfg.Whatsapp, cfg.Email,
		cfg.PrimaryColor, cfg.SecondaryColor,
		cfg.HeroVariant, cfg.HeroTitle, cfg.HeroSubtitle, cfg.VideoURL,
		cfg.MapURL, cfg.ShowMap,
		cfg.Facebook, cfg.Instagram, cfg.Twitter, cfg.Linkedin, cfg.Youtube,
		cfg.AboutTitle, cfg.AboutContent, cfg.ContactTitle, cfg.ContactText,
		cfg.AppraisalTitle, cfg.AppraisalText,
	)

	saved, err := scanSiteConfig(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert site config: %w", err)
	}
	return saved, nil
}

func scanSiteConfig(row pgx.Row) (*models.SiteConfig, error) {
	var cfg models.SiteConfig
	err := row.Scan(
		&cfg.ID, &cfg.CompanyName, &cfg.SiteTitle, &cfg.SiteDescription, &cfg.Logo, &cfg.Favicon,
		&cfg.Address, &cfg.Schedule, &cfg.Phone, &cfg.Whatsapp, &cfg.Email,
		&cfg.PrimaryColor, &cfg.SecondaryColor,
		&cfg.HeroVariant, &cfg.HeroTitle, &cfg.HeroSubtitle, &cfg.VideoURL,
		&cfg.MapURL, &cfg.ShowMap,
		&cfg.Facebook, &cfg.Instagram, &cfg.Twitter, &cfg.Linkedin, &cfg.Youtube,
		&cfg.AboutTitle, &cfg.AboutContent, &cfg.ContactTitle, &cfg.ContactText,
		&cfg.AppraisalTitle, &cfg.AppraisalText,
		&cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
