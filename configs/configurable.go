package configs

import "reflect"

// Configurable types can be assigned by a config script. The global named
// after the type holds the value.
type Configurable interface {
	SnekConfigurable()
}

var configurableType = reflect.TypeFor[Configurable]()
