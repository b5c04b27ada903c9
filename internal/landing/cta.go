package landing

// Navigator is the routing capability the hero triggers depend on.
type Navigator interface {
	NavigateTo(route string) error
}

// Activate hands the trigger's target to nav. Failures to resolve the route
// belong to the navigator and are returned as-is.
func (c CTA) Activate(nav Navigator) error {
	return nav.NavigateTo(c.Target)
}

// ActivationPath is the server endpoint that activates the trigger with the given ID.
func ActivationPath(id string) string {
	return "/cta/" + id
}
