package content

import (
	"returnfilers/pkg/settings"
	"returnfilers/pkg/theme"
	"returnfilers/pkg/visibility"
)

// policyExcerptLength is the rune budget of each policy summary
const policyExcerptLength = 160

// NavItem is one entry of the main navigation
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Sections lists the optional page blocks that may render
type Sections struct {
	Newsletter   bool `json:"newsletter"`
	Testimonials bool `json:"testimonials"`
	Pricing      bool `json:"pricing"`
}

// Widgets lists the auxiliary overlays allowed on the current path
type Widgets struct {
	Chat          bool `json:"chat"`
	Tracking      bool `json:"tracking"`
	ConsentBanner bool `json:"consentBanner"`
}

// PolicyExcerpts are plain-text summaries of the policy pages
type PolicyExcerpts struct {
	Privacy string `json:"privacy"`
	Terms   string `json:"terms"`
	Refund  string `json:"refund"`
}

// SiteView is everything a page needs to render branding, navigation and widgets
type SiteView struct {
	Path          string                 `json:"path"`
	Loading       bool                   `json:"loading"`
	Branding      Branding               `json:"branding"`
	BrandColors   settings.BrandColors   `json:"brandColors"`
	Palette       theme.Palette          `json:"palette"`
	Contact       settings.ContactInfo   `json:"contact"`
	Social        *settings.SocialMedia  `json:"social,omitempty"`
	Features      Features               `json:"features"`
	Navigation    []NavItem              `json:"navigation"`
	Sections      Sections               `json:"sections"`
	Widgets       Widgets                `json:"widgets"`
	SEO           settings.SEO           `json:"seo"`
	BusinessHours settings.BusinessHours `json:"businessHours"`
	Stats         settings.AboutStats    `json:"stats"`
	Team          []settings.TeamMember  `json:"team"`
	Policies      PolicyExcerpts         `json:"policies"`
}

// Navigation builds the main menu; Blog and Pricing entries follow their flags
func Navigation(f Features) []NavItem {
	nav := []NavItem{
		{Label: "Home", Href: "/"},
		{Label: "Services", Href: "/services"},
	}
	if f.Pricing {
		nav = append(nav, NavItem{Label: "Pricing", Href: "/pricing"})
	}
	if f.Blog {
		nav = append(nav, NavItem{Label: "Blog", Href: "/blog"})
	}
	return append(nav,
		NavItem{Label: "FAQ", Href: "/faq"},
		NavItem{Label: "About", Href: "/about"},
		NavItem{Label: "Contact", Href: "/contact"},
	)
}

// Compose resolves a full SiteView for path. It is recomputed on every call so that a
// document arriving after the first render is picked up; s may be nil.
func Compose(s *settings.Settings, d Defaults, path string, rules visibility.Rules) SiteView {
	features := ResolveFeatures(s)
	colors := ResolveBrandColors(s, d.BrandColors)
	seo := ResolveSEO(s, d.SEO)
	policies := ResolvePolicies(s, d.Policies)

	tracking := rules.TrackingScripts(path, seo.GoogleAnalyticsID != "" || seo.FacebookPixelID != "")

	view := SiteView{
		Path:        visibility.Normalize(path),
		Branding:    ResolveBranding(s, d),
		BrandColors: colors,
		Palette: theme.NewPalette(theme.PaletteInput{
			Primary:          colors.Primary,
			Secondary:        colors.Secondary,
			Accent:           colors.Accent,
			FooterBackground: colors.FooterBackground,
			FooterText:       colors.FooterText,
		}),
		Contact:    ResolveContact(s, d.Contact),
		Features:   features,
		Navigation: Navigation(features),
		Sections: Sections{
			Newsletter:   features.Newsletter,
			Testimonials: features.Testimonials,
			Pricing:      features.Pricing,
		},
		Widgets: Widgets{
			Chat:          rules.ChatWidget(path, features.Chatbot),
			Tracking:      tracking,
			ConsentBanner: rules.ConsentBanner(path, tracking),
		},
		SEO:           seo,
		BusinessHours: ResolveBusinessHours(s, d.BusinessHours),
		Stats:         ResolveStats(s, d.About),
		Team:          ResolveTeam(s, d.Team),
		Policies: PolicyExcerpts{
			Privacy: Excerpt(policies.Privacy, policyExcerptLength),
			Terms:   Excerpt(policies.Terms, policyExcerptLength),
			Refund:  Excerpt(policies.Refund, policyExcerptLength),
		},
	}

	if features.SocialMedia {
		social := ResolveSocialLinks(s, d.SocialMedia)
		view.Social = &social
	}

	return view
}
