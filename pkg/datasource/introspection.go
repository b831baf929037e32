package datasource

import (
	"github.com/aretw0/introspection"
)

// SourceState exposes internal state for observability.
type SourceState struct {
	StoreType   string `json:"store_type"`
	Subscribers int    `json:"subscribers"`
}

// State implements introspection.Introspectable.
func (s *Source) State() any {
	storeType := "store"
	if comp, ok := s.store.(introspection.Component); ok {
		storeType = comp.ComponentType()
	}

	return SourceState{
		StoreType:   storeType,
		Subscribers: s.subs.count(),
	}
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string {
	return "datasource"
}

var _ introspection.Introspectable = (*Source)(nil)
var _ introspection.Component = (*Source)(nil)
