package content

import "returnfilers/pkg/settings"

// Defaults are the hardcoded values a page renders before, or without, a settings document
type Defaults struct {
	CompanyName   string
	LogoURL       string
	LogoText      string
	BrandColors   settings.BrandColors
	Contact       settings.ContactInfo
	SocialMedia   settings.SocialMedia
	SEO           settings.SEO
	BusinessHours settings.BusinessHours
	About         settings.AboutStats
	Team          []settings.TeamMember
	Policies      settings.Policies
}

// SiteDefaults returns the fallback branding and copy used across the public site
func SiteDefaults() Defaults {
	return Defaults{
		CompanyName: "ReturnFilers",
		LogoURL:     "/images/logo.png",
		LogoText:    "ReturnFilers",
		BrandColors: settings.BrandColors{
			Primary:          "#0b1530",
			Secondary:        "#1e3a8a",
			Accent:           "#f59e0b",
			FooterBackground: "#0b1530",
			FooterText:       "#e5e7eb",
		},
		Contact: settings.ContactInfo{
			Email:   "info@returnfilers.in",
			Phone:   "+91 98765 43210",
			Address: "New Delhi, India",
		},
		SEO: settings.SEO{
			Title:       "ReturnFilers | Tax Filing, GST and Business Registration",
			Description: "Income tax returns, GST registration and filing, company incorporation and accounting services.",
			Keywords:    "income tax return, gst filing, gst registration, company registration, accounting",
		},
		BusinessHours: settings.BusinessHours{
			Weekdays: "Mon - Fri: 9:30 AM - 6:30 PM",
			Saturday: "Sat: 10:00 AM - 2:00 PM",
			Sunday:   "Sun: Closed",
		},
		About: settings.AboutStats{
			YearsExperience: 10,
			ClientsServed:   5000,
			ReturnsFiled:    15000,
			TeamSize:        25,
		},
		Team: []settings.TeamMember{
			{Name: "Founder", Position: "Managing Partner", Qualification: "Chartered Accountant"},
		},
		Policies: settings.Policies{
			Privacy: "<p>We collect only the information needed to prepare and file your returns.</p>",
			Terms:   "<p>Services are provided on the basis of the documents you supply.</p>",
			Refund:  "<p>Fees are refundable before work on a filing has started.</p>",
		},
	}
}
