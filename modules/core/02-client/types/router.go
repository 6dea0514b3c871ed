package types

import (
	"fmt"
	"sort"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"

	"github.com/DaviRain-Su/ibc-light-clients/modules/core/exported"
)

// The router is a map from client type to the LightClientModule which registers
// the concrete types of that client type.
type Router struct {
	routes map[string]exported.LightClientModule
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]exported.LightClientModule),
	}
}

// AddRoute adds a LightClientModule keyed by its client type. It returns the Router
// so AddRoute calls can be linked. It will panic if the client type has already been registered.
func (rtr *Router) AddRoute(module exported.LightClientModule) *Router {
	clientType := module.ClientType()
	if rtr.HasRoute(clientType) {
		panic(fmt.Errorf("route %s has already been registered", clientType))
	}

	rtr.routes[clientType] = module
	return rtr
}

// HasRoute returns true if the Router has a module registered for the client type or false otherwise.
func (rtr *Router) HasRoute(clientType string) bool {
	_, ok := rtr.routes[clientType]
	return ok
}

// GetRoute returns the LightClientModule for a given client type.
func (rtr *Router) GetRoute(clientType string) (exported.LightClientModule, bool) {
	module, ok := rtr.routes[clientType]
	return module, ok
}

// ClientTypes returns the registered client types in sorted order.
func (rtr *Router) ClientTypes() []string {
	clientTypes := make([]string, 0, len(rtr.routes))
	for clientType := range rtr.routes {
		clientTypes = append(clientTypes, clientType)
	}
	sort.Strings(clientTypes)

	return clientTypes
}

// RegisterInterfaces registers the concrete types of every routed client type.
func (rtr *Router) RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	for _, clientType := range rtr.ClientTypes() {
		rtr.routes[clientType].RegisterInterfaces(registry)
	}
}
