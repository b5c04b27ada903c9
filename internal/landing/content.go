package landing

// Route identifiers the hero triggers navigate to.
const (
	RouteRegister = "/register"
	RouteLogin    = "/login"
)

// Variant selects the visual treatment of a call-to-action trigger.
type Variant int

const (
	Primary Variant = iota
	Secondary
)

// CTA describes one call-to-action trigger in the hero.
type CTA struct {
	ID      string // stable key used by the activation endpoint, e.g. "get-started"
	Label   string
	Target  string // route identifier handed to the Navigator
	Variant Variant
}

// HeroContent is the text block at the top of the landing page.
type HeroContent struct {
	Title    string
	Brand    string
	Subtitle string
	CTAs     []CTA
}

// FeatureCard presents one product capability.
type FeatureCard struct {
	Icon        string
	Heading     string
	Description string
}

// Content is everything the landing view renders. It is a plain value: callers
// receive copies and the package-level definition is never handed out.
type Content struct {
	Hero     HeroContent
	Features []FeatureCard
}

var defaultHero = HeroContent{
	Title:    "Welcome to ",
	Brand:    "PrimeTrade.ai",
	Subtitle: "Your comprehensive task management platform powered by AI. Organize, track, and optimize your workflow with intelligent insights.",
	CTAs: []CTA{
		{ID: "get-started", Label: "Get Started", Target: RouteRegister, Variant: Primary},
		{ID: "sign-in", Label: "Sign In", Target: RouteLogin, Variant: Secondary},
	},
}

var defaultFeatures = []FeatureCard{
	{
		Icon:        "📊",
		Heading:     "Task Analytics",
		Description: "Get insights into your productivity patterns and optimize your workflow.",
	},
	{
		Icon:        "🔒",
		Heading:     "Secure & Private",
		Description: "Your data is protected with enterprise-grade security measures.",
	},
	{
		Icon:        "⚡",
		Heading:     "Fast & Reliable",
		Description: "Experience lightning-fast performance with our optimized platform.",
	},
}

// DefaultContent returns a fresh copy of the PrimeTrade.ai landing content.
func DefaultContent() Content {
	return Content{Hero: defaultHero, Features: defaultFeatures}.Clone()
}

// Clone returns a deep copy so the receiver's slices can't be modified through it.
func (c Content) Clone() Content {
	out := c
	out.Hero.CTAs = append([]CTA(nil), c.Hero.CTAs...)
	out.Features = append([]FeatureCard(nil), c.Features...)
	return out
}

// FindCTA looks up a trigger by its ID.
func (c Content) FindCTA(id string) (CTA, bool) {
	for _, cta := range c.Hero.CTAs {
		if cta.ID == id {
			return cta, true
		}
	}
	return CTA{}, false
}
