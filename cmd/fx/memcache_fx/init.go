package memcache_fx

import (
	"go.uber.org/fx"

	mem "tripcraft/pkg/memcache"
)

var Module = fx.Provide(provideLoginStates)

func provideLoginStates() mem.LoginStateStore {
	return mem.NewLoginStates()
}
