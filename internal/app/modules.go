package app

import (
	"github.com/specialistvlad/read2env/internal/registry"
	"github.com/specialistvlad/read2env/modules/env_vars"
	"github.com/specialistvlad/read2env/modules/print"
	"github.com/specialistvlad/read2env/modules/read2env"
)

// coreModules returns the modules compiled into the read2env binary.
func coreModules() []registry.Module {
	return []registry.Module{
		&read2env.Module{},
		&print.Module{},
		&env_vars.Module{},
	}
}
