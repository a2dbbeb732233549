// Package content merges the settings document with hardcoded defaults into display values.
//
// Resolution is field by field: a settings value wins when it is present and not blank,
// otherwise the default is used. Nested objects never replace their default wholesale.
package content

import (
	"strings"

	"returnfilers/pkg/settings"
)

// ResolveString returns value unless it is blank
func ResolveString(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// ResolveInt returns value unless it is zero or negative
func ResolveInt(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

// Branding is the resolved company identity
type Branding struct {
	CompanyName string `json:"companyName"`
	LogoURL     string `json:"logoUrl"`
	LogoText    string `json:"logoText"`
}

// ResolveCompanyName picks the configured company name or the default
func ResolveCompanyName(s *settings.Settings, fallback string) string {
	if s == nil {
		return fallback
	}
	return ResolveString(s.CompanyName, fallback)
}

// ResolveBranding resolves name, logo and logo text
func ResolveBranding(s *settings.Settings, d Defaults) Branding {
	b := Branding{CompanyName: ResolveCompanyName(s, d.CompanyName)}

	var logoURL, logoText string
	if s != nil {
		logoURL, logoText = s.LogoURL, s.LogoText
	}
	b.LogoURL = ResolveString(logoURL, d.LogoURL)
	b.LogoText = ResolveString(logoText, ResolveString(d.LogoText, b.CompanyName))
	return b
}

// ResolveBrandColors resolves each brand color slot independently
func ResolveBrandColors(s *settings.Settings, d settings.BrandColors) settings.BrandColors {
	if s == nil || s.BrandColors == nil {
		return d
	}
	c := s.BrandColors
	return settings.BrandColors{
		Primary:          ResolveString(c.Primary, d.Primary),
		Secondary:        ResolveString(c.Secondary, d.Secondary),
		Accent:           ResolveString(c.Accent, d.Accent),
		FooterBackground: ResolveString(c.FooterBackground, d.FooterBackground),
		FooterText:       ResolveString(c.FooterText, d.FooterText),
	}
}

// ResolveSocialMediaColor returns the configured color for a network or the fallback
func ResolveSocialMediaColor(s *settings.Settings, network, fallback string) string {
	if s == nil || s.SocialMediaColors == nil {
		return fallback
	}
	return ResolveString(s.SocialMediaColors[network], fallback)
}

// ResolveContact resolves email, phone and address
func ResolveContact(s *settings.Settings, d settings.ContactInfo) settings.ContactInfo {
	if s == nil || s.Contact == nil {
		return d
	}
	return settings.ContactInfo{
		Email:   ResolveString(s.Contact.Email, d.Email),
		Phone:   ResolveString(s.Contact.Phone, d.Phone),
		Address: ResolveString(s.Contact.Address, d.Address),
	}
}

// ResolveSocialLinks resolves each social network URL
func ResolveSocialLinks(s *settings.Settings, d settings.SocialMedia) settings.SocialMedia {
	if s == nil || s.SocialMedia == nil {
		return d
	}
	m := s.SocialMedia
	return settings.SocialMedia{
		Facebook:  ResolveString(m.Facebook, d.Facebook),
		Twitter:   ResolveString(m.Twitter, d.Twitter),
		LinkedIn:  ResolveString(m.LinkedIn, d.LinkedIn),
		Instagram: ResolveString(m.Instagram, d.Instagram),
		YouTube:   ResolveString(m.YouTube, d.YouTube),
	}
}

// ResolveSEO resolves page metadata and tracking IDs
func ResolveSEO(s *settings.Settings, d settings.SEO) settings.SEO {
	if s == nil || s.SEO == nil {
		return d
	}
	m := s.SEO
	return settings.SEO{
		Title:             ResolveString(m.Title, d.Title),
		Description:       ResolveString(m.Description, d.Description),
		Keywords:          ResolveString(m.Keywords, d.Keywords),
		GoogleAnalyticsID: ResolveString(m.GoogleAnalyticsID, d.GoogleAnalyticsID),
		FacebookPixelID:   ResolveString(m.FacebookPixelID, d.FacebookPixelID),
	}
}

// ResolveBusinessHours resolves the opening-hours strings
func ResolveBusinessHours(s *settings.Settings, d settings.BusinessHours) settings.BusinessHours {
	if s == nil || s.BusinessHours == nil {
		return d
	}
	h := s.BusinessHours
	return settings.BusinessHours{
		Weekdays: ResolveString(h.Weekdays, d.Weekdays),
		Saturday: ResolveString(h.Saturday, d.Saturday),
		Sunday:   ResolveString(h.Sunday, d.Sunday),
	}
}

// ResolveStats resolves the about-page counters
func ResolveStats(s *settings.Settings, d settings.AboutStats) settings.AboutStats {
	if s == nil || s.About == nil {
		return d
	}
	a := s.About
	return settings.AboutStats{
		YearsExperience: ResolveInt(a.YearsExperience, d.YearsExperience),
		ClientsServed:   ResolveInt(a.ClientsServed, d.ClientsServed),
		ReturnsFiled:    ResolveInt(a.ReturnsFiled, d.ReturnsFiled),
		TeamSize:        ResolveInt(a.TeamSize, d.TeamSize),
	}
}

// ResolveTeam returns the configured members with a name, or the default list when none remain
func ResolveTeam(s *settings.Settings, d []settings.TeamMember) []settings.TeamMember {
	if s == nil {
		return d
	}
	team := make([]settings.TeamMember, 0, len(s.Team))
	for _, m := range s.Team {
		if strings.TrimSpace(m.Name) == "" {
			continue
		}
		team = append(team, m)
	}
	if len(team) == 0 {
		return d
	}
	return team
}

// ResolvePolicies resolves the policy HTML blobs
func ResolvePolicies(s *settings.Settings, d settings.Policies) settings.Policies {
	if s == nil || s.Policies == nil {
		return d
	}
	p := s.Policies
	return settings.Policies{
		Privacy: ResolveString(p.Privacy, d.Privacy),
		Terms:   ResolveString(p.Terms, d.Terms),
		Refund:  ResolveString(p.Refund, d.Refund),
	}
}
