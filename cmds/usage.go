package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command value, print each command once
	names := make(map[*Command][]string)
	for name, cmd := range commands {
		if cmd == nil {
			continue
		}
		names[cmd] = append(names[cmd], name)
	}
	sorted := lo.Keys(names)
	for _, cmd := range sorted {
		slices.Sort(names[cmd])
	}
	slices.SortFunc(sorted, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	indent := strings.Repeat("  ", depth)
	for _, cmd := range sorted {
		line := indent + strings.Join(names[cmd], ", ")
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			writeCommands(w, cmd.Subs, depth+1)
		}
	}
}
