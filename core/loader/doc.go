// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface, which names the feature, reports
// whether it is enabled and registers its routes on a fiber.Router.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager holds the registry and loads enabled features in registration order.
package loader
