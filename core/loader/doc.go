// Package loader registers the HTTP features served by the start command.
//
// A feature bundles a service with its fiber routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager.LoadAll loads the enabled features in registration order (rosters,
// then integrity) and returns their names. A feature built without a service
// reports itself disabled and is skipped.
package loader
