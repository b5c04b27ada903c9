package layouts

const siteName = "PrimeTrade.ai"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + siteName
	}
	return siteName
}
