package theme

// Palette holds the derived colors for every brand slot a page styles inline
type Palette struct {
	Primary          DerivedColors `json:"primary"`
	Secondary        DerivedColors `json:"secondary"`
	Accent           DerivedColors `json:"accent"`
	FooterBackground DerivedColors `json:"footerBackground"`
	FooterText       DerivedColors `json:"footerText"`
}

// PaletteInput carries the hex values for each slot
type PaletteInput struct {
	Primary          string
	Secondary        string
	Accent           string
	FooterBackground string
	FooterText       string
}

// NewPalette derives every slot independently; a bad value in one slot does not affect the others
func NewPalette(in PaletteInput) Palette {
	return Palette{
		Primary:          DeriveColors(in.Primary),
		Secondary:        DeriveColors(in.Secondary),
		Accent:           DeriveColors(in.Accent),
		FooterBackground: DeriveColors(in.FooterBackground),
		FooterText:       DeriveColors(in.FooterText),
	}
}
