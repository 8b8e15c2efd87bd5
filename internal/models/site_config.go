package models

import "time"

// SiteConfig is the single-row CMS configuration record driving the public
// site: branding, colors, hero banner variant, page copy and contact info.
// All nullable columns use pointers to distinguish "unset" from empty.
type SiteConfig struct {
	ID              string    `json:"id"`
	CompanyName     string    `json:"companyName"`
	SiteTitle       *string   `json:"siteTitle,omitempty"`
	SiteDescription *string   `json:"siteDescription,omitempty"`
	Logo            *string   `json:"logo,omitempty"`
	Favicon         *string   `json:"favicon,omitempty"`
	Address         *string   `json:"address,omitempty"`
	Schedule        *string   `json:"schedule,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Whatsapp        *string   `json:"whatsapp,omitempty"`
	Email           *string   `json:"email,omitempty"`
	PrimaryColor    string    `json:"primaryColor"`
	SecondaryColor  string    `json:"secondaryColor"`
	HeroVariant     *string   `json:"heroVariant,omitempty"`
	HeroTitle       *string   `json:"heroTitle,omitempty"`
	HeroSubtitle    *string   `json:"heroSubtitle,omitempty"`
	VideoURL        *string   `json:"videoUrl,omitempty"`
	MapURL          *string   `json:"mapUrl,omitempty"`
	ShowMap         bool      `json:"showMap"`
	Facebook        *string   `json:"facebook,omitempty"`
	Instagram       *string   `json:"instagram,omitempty"`
	Twitter         *string   `json:"twitter,omitempty"`
	Linkedin        *string   `json:"linkedin,omitempty"`
	Youtube         *string   `json:"youtube,omitempty"`
	AboutTitle      *string   `json:"aboutTitle,omitempty"`
	AboutContent    *string   `json:"aboutContent,omitempty"`
	ContactTitle    *string   `json:"contactTitle,omitempty"`
	ContactText     *string   `json:"contactDescription,omitempty"`
	AppraisalTitle  *string   `json:"appraisalTitle,omitempty"`
	AppraisalText   *string   `json:"appraisalDescription,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DefaultSiteConfig returns the record served before an admin has saved
// anything, mirroring the seed the site ships with.
func DefaultSiteConfig() *SiteConfig {
	title := "Inmobiliaria Homez - Propiedades de Calidad"
	desc := "Tu inmobiliaria de confianza, especializada en la venta y alquiler de propiedades"
	phone := "+54 11 1234-5678"
	email := "contacto@inmobiliaria.com"
	address := "Av. Corrientes 1234, CABA"
	return &SiteConfig{
		ID:              "default",
		CompanyName:     "Inmobiliaria Homez",
		SiteTitle:       &title,
		SiteDescription: &desc,
		Phone:           &phone,
		Email:           &email,
		Address:         &address,
		PrimaryColor:    "#f97316",
		SecondaryColor:  "#64748b",
	}
}
