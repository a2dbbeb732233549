package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"returnfilers/pkg/settings"
	"returnfilers/pkg/visibility"
)

func TestResolveCompanyNamePrecedence(t *testing.T) {
	assert.Equal(t, "Acme Co", ResolveCompanyName(&settings.Settings{CompanyName: "Acme Co"}, "ReturnFilers"))
	assert.Equal(t, "ReturnFilers", ResolveCompanyName(&settings.Settings{CompanyName: ""}, "ReturnFilers"))
	assert.Equal(t, "ReturnFilers", ResolveCompanyName(&settings.Settings{CompanyName: "   "}, "ReturnFilers"))
	assert.Equal(t, "ReturnFilers", ResolveCompanyName(nil, "ReturnFilers"))
}

func TestResolveBrandingNilMatchesEmpty(t *testing.T) {
	d := Defaults{CompanyName: "X", LogoURL: "/logo.svg"}

	fromNil := ResolveBranding(nil, d)
	fromEmpty := ResolveBranding(&settings.Settings{}, d)
	assert.Equal(t, fromEmpty, fromNil)
	assert.Equal(t, "X", fromNil.LogoText)
	assert.Equal(t, "/logo.svg", fromNil.LogoURL)

	custom := ResolveBranding(&settings.Settings{CompanyName: "Acme", LogoText: "AC"}, d)
	assert.Equal(t, "AC", custom.LogoText)
}

func TestResolveBrandColorsFieldLevel(t *testing.T) {
	d := settings.BrandColors{Primary: "#000001", Secondary: "#000002", Accent: "#000003"}
	s := &settings.Settings{BrandColors: &settings.BrandColors{Primary: "#123456"}}

	got := ResolveBrandColors(s, d)

	assert.Equal(t, "#123456", got.Primary)
	assert.Equal(t, "#000002", got.Secondary)
	assert.Equal(t, "#000003", got.Accent)
	assert.Equal(t, d, ResolveBrandColors(nil, d))
	assert.Equal(t, d, ResolveBrandColors(&settings.Settings{}, d))
}

func TestResolveNestedObjectsFallBackPerField(t *testing.T) {
	d := SiteDefaults()
	s := &settings.Settings{
		Contact:       &settings.ContactInfo{Phone: "+91 11 2222 3333"},
		BusinessHours: &settings.BusinessHours{Sunday: "Sun: By appointment"},
		About:         &settings.AboutStats{ClientsServed: 12000},
		SocialMedia:   &settings.SocialMedia{LinkedIn: "https://linkedin.com/company/acme"},
	}

	contact := ResolveContact(s, d.Contact)
	assert.Equal(t, "+91 11 2222 3333", contact.Phone)
	assert.Equal(t, d.Contact.Email, contact.Email)

	hours := ResolveBusinessHours(s, d.BusinessHours)
	assert.Equal(t, "Sun: By appointment", hours.Sunday)
	assert.Equal(t, d.BusinessHours.Weekdays, hours.Weekdays)

	stats := ResolveStats(s, d.About)
	assert.Equal(t, 12000, stats.ClientsServed)
	assert.Equal(t, d.About.TeamSize, stats.TeamSize)

	social := ResolveSocialLinks(s, settings.SocialMedia{Facebook: "https://facebook.com/default"})
	assert.Equal(t, "https://linkedin.com/company/acme", social.LinkedIn)
	assert.Equal(t, "https://facebook.com/default", social.Facebook)
}

func TestResolveTeam(t *testing.T) {
	d := []settings.TeamMember{{Name: "Default"}}

	assert.Equal(t, d, ResolveTeam(nil, d))
	assert.Equal(t, d, ResolveTeam(&settings.Settings{Team: []settings.TeamMember{{Name: " "}}}, d))

	team := ResolveTeam(&settings.Settings{Team: []settings.TeamMember{{Name: "Priya", Position: "Partner"}, {Name: ""}}}, d)
	require.Len(t, team, 1)
	assert.Equal(t, "Priya", team[0].Name)
}

func TestResolveSocialMediaColor(t *testing.T) {
	s := &settings.Settings{SocialMediaColors: map[string]string{"facebook": "#1877f2", "twitter": ""}}
	assert.Equal(t, "#1877f2", ResolveSocialMediaColor(s, "facebook", "#000000"))
	assert.Equal(t, "#000000", ResolveSocialMediaColor(s, "twitter", "#000000"))
	assert.Equal(t, "#000000", ResolveSocialMediaColor(nil, "facebook", "#000000"))
}

func TestResolveFeaturesDefaults(t *testing.T) {
	f := ResolveFeatures(nil)
	assert.True(t, f.Blog)
	assert.True(t, f.Pricing)
	assert.False(t, f.Newsletter)
	assert.False(t, f.Chatbot)
	assert.False(t, f.Testimonials)
	assert.False(t, f.SocialMedia)

	f = ResolveFeatures(&settings.Settings{
		EnableBlog:       settings.Bool(false),
		EnableNewsletter: settings.Bool(true),
	})
	assert.False(t, f.Blog)
	assert.True(t, f.Newsletter)
	assert.True(t, f.Pricing)
}

func TestComposeWithoutSettings(t *testing.T) {
	d := SiteDefaults()
	view := Compose(nil, d, "/about", visibility.NewRules(nil))

	assert.Equal(t, "ReturnFilers", view.Branding.CompanyName)
	assert.Equal(t, d.BrandColors, view.BrandColors)
	assert.Equal(t, "rgb(11, 21, 48)", view.Palette.Primary.Solid)
	assert.NotEmpty(t, view.Navigation)
	assert.NotEmpty(t, view.Policies.Privacy)
	assert.Nil(t, view.Social)
	assert.False(t, view.Widgets.Chat)
	assert.False(t, view.Widgets.Tracking)
	assert.False(t, view.Sections.Newsletter)
}

func TestComposeEndToEndPrimaryColor(t *testing.T) {
	doc, err := settings.DecodeEnvelope([]byte(`{"success":true,"data":{"brandColors":{"primary":"#123456"}}}`))
	require.NoError(t, err)

	view := Compose(doc, SiteDefaults(), "/", visibility.NewRules(nil))

	assert.Equal(t, "#123456", view.BrandColors.Primary)
	assert.Equal(t, "rgb(18, 52, 86)", view.Palette.Primary.Solid)
	assert.Equal(t, "rgb(0, 32, 66)", view.Palette.Primary.Dark)
	assert.Equal(t, SiteDefaults().BrandColors.Accent, view.BrandColors.Accent)
}

func TestComposeFeatureGating(t *testing.T) {
	s := &settings.Settings{
		EnableBlog:        settings.Bool(false),
		ShowPricing:       settings.Bool(false),
		EnableChatbot:     settings.Bool(true),
		EnableSocialMedia: settings.Bool(true),
		SEO:               &settings.SEO{GoogleAnalyticsID: "G-TEST"},
	}

	view := Compose(s, SiteDefaults(), "/services", visibility.NewRules([]string{"/services"}))

	for _, item := range view.Navigation {
		assert.NotEqual(t, "/blog", item.Href)
		assert.NotEqual(t, "/pricing", item.Href)
	}
	assert.False(t, view.Sections.Pricing)
	assert.True(t, view.Widgets.Chat)
	assert.True(t, view.Widgets.Tracking)
	assert.True(t, view.Widgets.ConsentBanner)
	require.NotNil(t, view.Social)

	admin := Compose(s, SiteDefaults(), "/admin/services", visibility.NewRules([]string{"/services"}))
	assert.False(t, admin.Widgets.Chat)
	assert.False(t, admin.Widgets.Tracking)
	assert.False(t, admin.Widgets.ConsentBanner)
}

func TestPlainTextAndExcerpt(t *testing.T) {
	html := `<h2>Privacy</h2><p>We   respect <strong>your</strong> data.</p><script>alert(1)</script>`
	assert.Equal(t, "Privacy We respect your data.", PlainText(html))
	assert.Equal(t, "", PlainText("  "))

	assert.Equal(t, "No refunds after filing", PlainText("<ul><li>No refunds</li><li>after filing</li></ul>"))
	assert.Equal(t, "First para. Second para.", PlainText("<div><p>First para.</p><p>Second para.</p></div>"))
	assert.Equal(t, "Line one Line two", PlainText("<p>Line one<br>Line two</p>"))
	assert.Equal(t, "GSTIN required", PlainText("<p><b>GST</b>IN required</p>"), "inline tags do not split words")

	long := "<p>one two three four five six</p>"
	assert.Equal(t, "one two...", Excerpt(long, 10))
	assert.Equal(t, "one two three four five six", Excerpt(long, 0))
}
