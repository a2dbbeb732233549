package content

import "returnfilers/pkg/settings"

// Flag defaults. Core navigation is on unless switched off;
// optional marketing features stay off until switched on.
const (
	DefaultEnableBlog         = true
	DefaultShowPricing        = true
	DefaultEnableNewsletter   = false
	DefaultEnableChatbot      = false
	DefaultEnableTestimonials = false
	DefaultEnableSocialMedia  = false
)

// Features is the resolved set of feature flags
type Features struct {
	Blog         bool `json:"blog"`
	Pricing      bool `json:"pricing"`
	Newsletter   bool `json:"newsletter"`
	Chatbot      bool `json:"chatbot"`
	Testimonials bool `json:"testimonials"`
	SocialMedia  bool `json:"socialMedia"`
}

func flag(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// ResolveFeatures applies the documented default to every unset flag
func ResolveFeatures(s *settings.Settings) Features {
	if s == nil {
		s = &settings.Settings{}
	}
	return Features{
		Blog:         flag(s.EnableBlog, DefaultEnableBlog),
		Pricing:      flag(s.ShowPricing, DefaultShowPricing),
		Newsletter:   flag(s.EnableNewsletter, DefaultEnableNewsletter),
		Chatbot:      flag(s.EnableChatbot, DefaultEnableChatbot),
		Testimonials: flag(s.EnableTestimonials, DefaultEnableTestimonials),
		SocialMedia:  flag(s.EnableSocialMedia, DefaultEnableSocialMedia),
	}
}
