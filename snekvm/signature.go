package snekvm

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Signature describes how call arguments map onto the parameter slots of
// a code function.
type Signature struct {
	Args           []string
	RequiredKwargs []string
	VarArgs        string
	Defaults       []*Handle
	KwDefaults     map[string]*Handle
	VarKw          string
}

// SignatureOf derives the signature of code with the given defaults.
func SignatureOf(code *Code, defaults []*Handle, kwDefaults map[string]*Handle) *Signature {
	return &Signature{
		Args:           code.ArgNames,
		RequiredKwargs: code.KwOnly,
		VarArgs:        code.VarArgs,
		Defaults:       defaults,
		KwDefaults:     kwDefaults,
		VarKw:          code.VarKw,
	}
}

// Slots is the number of values Bind returns.
func (s *Signature) Slots() int {
	n := len(s.Args) + len(s.RequiredKwargs)
	if s.VarArgs != "" {
		n++
	}
	if s.VarKw != "" {
		n++
	}
	return n
}

func quotedList(names []string) string {
	quoted := lo.Map(names, func(name string, _ int) string {
		return "'" + name + "'"
	})
	switch len(quoted) {
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " and " + quoted[1]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", and " + quoted[len(quoted)-1]
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// Bind matches args and kwargs to parameters. The result holds positional
// parameters, keyword-only parameters, then the *args tuple and the
// **kwargs dict when present.
func (s *Signature) Bind(rt *Runtime, name string, args []*Handle, kwargs []KwArg) ([]*Handle, error) {
	n := len(s.Args)
	slots := make([]*Handle, s.Slots())

	if len(args) > n && s.VarArgs == "" {
		takes := plural(n, "positional argument")
		if len(s.Defaults) > 0 {
			takes = fmt.Sprintf("from %d to %s", n-len(s.Defaults), takes)
		}
		given := "were"
		if len(args) == 1 {
			given = "was"
		}
		return nil, typeErrorf("%s() takes %s but %d %s given", name, takes, len(args), given)
	}
	copy(slots, args[:min(len(args), n)])

	var kwDict *Handle
	if s.VarKw != "" {
		kwDict = rt.Dict()
	}
	for _, kw := range kwargs {
		if i := slices.Index(s.Args, kw.Name); i >= 0 {
			if slots[i] != nil {
				return nil, typeErrorf("%s() got multiple values for argument '%s'", name, kw.Name)
			}
			slots[i] = kw.Value
			continue
		}
		if i := slices.Index(s.RequiredKwargs, kw.Name); i >= 0 {
			if slots[n+i] != nil {
				return nil, typeErrorf("%s() got multiple values for argument '%s'", name, kw.Name)
			}
			slots[n+i] = kw.Value
			continue
		}
		if kwDict == nil {
			return nil, typeErrorf("%s() got an unexpected keyword argument '%s'", name, kw.Name)
		}
		if err := dictOf(kwDict).store(rt, rt.Str(kw.Name), kw.Value); err != nil {
			return nil, err
		}
	}

	firstDefault := n - len(s.Defaults)
	var missing []string
	for i := range n {
		if slots[i] != nil {
			continue
		}
		if i >= firstDefault {
			slots[i] = s.Defaults[i-firstDefault]
			continue
		}
		missing = append(missing, s.Args[i])
	}
	if len(missing) > 0 {
		return nil, typeErrorf("%s() missing %s: %s",
			name, plural(len(missing), "required positional argument"), quotedList(missing))
	}

	missing = missing[:0]
	for i, kw := range s.RequiredKwargs {
		if slots[n+i] != nil {
			continue
		}
		if v, ok := s.KwDefaults[kw]; ok {
			slots[n+i] = v
			continue
		}
		missing = append(missing, kw)
	}
	if len(missing) > 0 {
		return nil, typeErrorf("%s() missing %s: %s",
			name, plural(len(missing), "required keyword-only argument"), quotedList(missing))
	}

	next := n + len(s.RequiredKwargs)
	if s.VarArgs != "" {
		var extra []*Handle
		if len(args) > n {
			extra = slices.Clone(args[n:])
		}
		slots[next] = rt.Tuple(extra)
		next++
	}
	if s.VarKw != "" {
		slots[next] = kwDict
	}
	return slots, nil
}
