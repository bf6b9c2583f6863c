package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/snek/debugs"
	"github.com/reusee/snek/snekconfigs"
)

type Module struct {
	dscope.Module
	Configs snekconfigs.Module
	Debugs  debugs.Module
}
