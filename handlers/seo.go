package handlers

import "chimney_care_go/models"

const defaultOGImage = "/static/images/og-image.png"

// landingSEO builds the landing page metadata for the configured site URL
func landingSEO(appURL string) *models.SEO {
	return models.DefaultSEO(
		"Chimney Care - Kitchen Chimney Cleaning & Repair",
		"Professional kitchen chimney cleaning and repair. Deep degreasing, motor and duct checks, same-day service and a 30-day warranty. Request a callback today.",
	).
		WithKeywords("kitchen chimney cleaning, chimney repair, chimney degreasing, chimney motor service, filter replacement").
		WithCanonical(appURL + "/").
		WithOGImage(appURL + defaultOGImage)
}
