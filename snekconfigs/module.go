package snekconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/snek/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
