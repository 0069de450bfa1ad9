package models

// SEO contains metadata for search engine optimization and social sharing
type SEO struct {
	Title       string // Page title
	Description string // Meta description (150-160 chars recommended)
	Keywords    string // Meta keywords (comma-separated)
	Canonical   string // Canonical URL
	OGImage     string // Open Graph image URL
	OGType      string // Open Graph type (website, article, etc.)
	TwitterCard string // Twitter card type (summary, summary_large_image)
	NoIndex     bool   // If true, adds noindex directive
}

// DefaultSEO returns SEO with sensible defaults
func DefaultSEO(title, description string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	}
}

// WithCanonical sets the canonical URL
func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// WithOGImage sets the Open Graph image
func (s *SEO) WithOGImage(imageURL string) *SEO {
	s.OGImage = imageURL
	return s
}

// WithKeywords sets meta keywords
func (s *SEO) WithKeywords(keywords string) *SEO {
	s.Keywords = keywords
	return s
}
