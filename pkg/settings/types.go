// Package settings holds the site configuration document and the store that shares it.
package settings

// Settings is the single site configuration document. Every field is optional;
// consumers resolve missing values through pkg/content.
type Settings struct {
	CompanyName string `json:"companyName,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	LogoText    string `json:"logoText,omitempty"`

	BrandColors       *BrandColors      `json:"brandColors,omitempty"`
	SocialMediaColors map[string]string `json:"socialMediaColors,omitempty" binding:"omitempty,dive,hex6"`

	Contact     *ContactInfo `json:"contact,omitempty"`
	SocialMedia *SocialMedia `json:"socialMedia,omitempty"`

	// Feature flags are tri-state: nil means "not configured"
	EnableBlog         *bool `json:"enableBlog,omitempty"`
	EnableNewsletter   *bool `json:"enableNewsletter,omitempty"`
	EnableChatbot      *bool `json:"enableChatbot,omitempty"`
	EnableTestimonials *bool `json:"enableTestimonials,omitempty"`
	ShowPricing        *bool `json:"showPricing,omitempty"`
	EnableSocialMedia  *bool `json:"enableSocialMedia,omitempty"`

	SEO           *SEO           `json:"seo,omitempty"`
	BusinessHours *BusinessHours `json:"businessHours,omitempty"`
	About         *AboutStats    `json:"about,omitempty"`
	Team          []TeamMember   `json:"team,omitempty" binding:"omitempty,dive"`
	Policies      *Policies      `json:"policies,omitempty"`
}

// BrandColors are hex strings such as "#0b1530"
type BrandColors struct {
	Primary          string `json:"primary,omitempty" binding:"omitempty,hex6"`
	Secondary        string `json:"secondary,omitempty" binding:"omitempty,hex6"`
	Accent           string `json:"accent,omitempty" binding:"omitempty,hex6"`
	FooterBackground string `json:"footerBackground,omitempty" binding:"omitempty,hex6"`
	FooterText       string `json:"footerText,omitempty" binding:"omitempty,hex6"`
}

type ContactInfo struct {
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty" binding:"omitempty,url"`
	Twitter   string `json:"twitter,omitempty" binding:"omitempty,url"`
	LinkedIn  string `json:"linkedin,omitempty" binding:"omitempty,url"`
	Instagram string `json:"instagram,omitempty" binding:"omitempty,url"`
	YouTube   string `json:"youtube,omitempty" binding:"omitempty,url"`
}

type SEO struct {
	Title             string `json:"title,omitempty"`
	Description       string `json:"description,omitempty"`
	Keywords          string `json:"keywords,omitempty"`
	GoogleAnalyticsID string `json:"googleAnalyticsId,omitempty"`
	FacebookPixelID   string `json:"facebookPixelId,omitempty"`
}

type BusinessHours struct {
	Weekdays string `json:"weekdays,omitempty"`
	Saturday string `json:"saturday,omitempty"`
	Sunday   string `json:"sunday,omitempty"`
}

// AboutStats are the counters shown on the about page; zero means unset
type AboutStats struct {
	YearsExperience int `json:"yearsExperience,omitempty" binding:"omitempty,min=0"`
	ClientsServed   int `json:"clientsServed,omitempty" binding:"omitempty,min=0"`
	ReturnsFiled    int `json:"returnsFiled,omitempty" binding:"omitempty,min=0"`
	TeamSize        int `json:"teamSize,omitempty" binding:"omitempty,min=0"`
}

type TeamMember struct {
	Name          string `json:"name" binding:"required"`
	Position      string `json:"position,omitempty"`
	Qualification string `json:"qualification,omitempty"`
	Bio           string `json:"bio,omitempty"`
}

// Policies hold rich-text HTML
type Policies struct {
	Privacy string `json:"privacy,omitempty"`
	Terms   string `json:"terms,omitempty"`
	Refund  string `json:"refund,omitempty"`
}

// Envelope is the wire shape of the settings endpoint
type Envelope struct {
	Success *bool     `json:"success"`
	Data    *Settings `json:"data,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Bool returns a pointer to v, for building flag values
func Bool(v bool) *bool {
	return &v
}
