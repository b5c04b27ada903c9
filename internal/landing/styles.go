package landing

// Tailwind class tokens. They only distinguish regions visually.
const (
	pageClass      = "min-h-screen bg-gradient-to-br from-blue-50 to-indigo-100"
	containerClass = "container mx-auto px-4 py-16"
	heroClass      = "text-center"
	titleClass     = "text-5xl font-bold text-gray-900 mb-6"
	brandClass     = "text-blue-600"
	subtitleClass  = "text-xl text-gray-600 mb-8 max-w-2xl mx-auto"
	actionsClass   = "space-x-4"
	primaryClass   = "bg-blue-600 hover:bg-blue-700 text-white font-semibold py-3 px-6 rounded-lg transition duration-300"
	secondaryClass = "bg-white hover:bg-gray-50 text-blue-600 font-semibold py-3 px-6 rounded-lg border border-blue-600 transition duration-300"
	gridClass      = "mt-16 grid md:grid-cols-3 gap-8"
	cardClass      = "bg-white p-6 rounded-lg shadow-md"
	iconClass      = "text-blue-600 text-3xl mb-4"
	headingClass   = "text-xl font-semibold mb-2"
	descClass      = "text-gray-600"
)

func ctaClass(v Variant) string {
	if v == Primary {
		return primaryClass
	}
	return secondaryClass
}
