package flows

const (
	RouteLogin   = "/"
	RouteCliente = "/cliente"
)

// Navigator moves the front end to another screen.
type Navigator interface {
	Navigate(route string)
}

type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) {
	f(route)
}

type noopNavigator struct{}

func (noopNavigator) Navigate(string) {}
