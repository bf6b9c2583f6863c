package snekpy

import (
	"context"
	"strings"
	"testing"

	"github.com/reusee/snek/snekvm"
	"go.starlark.net/starlark"
)

var sharedPrograms = map[string]string{
	"arith": `
a = 7 * 6 - 2
b = -17 // 5
c = -17 % 5
d = (1 << 70) + 3
e = min(3, 1, 2) + max([4, 8, 6])
`,

	"lists": `
l = [1, 2, 3]
l.append(4)
l += [5]
n = len(l)
nested = [[i, i * i] for i in range(4) if i != 2]
t = (1, (2, None), True)
one = (1,)
`,

	"loops": `
total = 0
for i in range(10):
	if i % 3 == 0:
		continue
	if i > 7:
		break
	total += i
count = 0
while count < 5:
	count += 1
`,

	"functions": `
def fact(n):
	if n <= 1:
		return 1
	return n * fact(n - 1)
r1 = fact(25)

def kw(a, b=2, *args, **kwargs):
	return [a, b, len(args), len(kwargs)]
r2 = kw(1)
r3 = kw(1, 3, 4, 5, x=6)
r4 = (lambda x, y: x - y)(10, y=4)
`,

	"dicts": `
d = {1: 10, 2: 20}
d[3] = 30
d[1] += 1
keys = list(d.keys())
has = 2 in d
size = len(d)
squares = {k: k * k for k in range(4)}
`,

	"logic": `
x = 0 or 5
y = 3 and 4
z = not []
w = 1 if len([]) else 2
chain = 1 < 2 and 2 < 3
ints = [int(True), int(-3), bool(0)]
`,
}

func TestAgreesWithStarlark(t *testing.T) {
	for name, src := range sharedPrograms {
		t.Run(name, func(t *testing.T) {
			thread := &starlark.Thread{
				Name: name,
			}
			want, err := starlark.ExecFileOptions(fileOptions, thread, name+".star", src, nil)
			if err != nil {
				t.Fatal(err)
			}

			code, err := Compile(name+".py", strings.NewReader(src))
			if err != nil {
				t.Fatal(err)
			}
			interp := snekvm.NewInterpreter(snekvm.NewRuntime())
			if _, err := interp.Exec(context.Background(), code); err != nil {
				t.Fatal(err)
			}

			for _, global := range want.Keys() {
				value := want[global]
				if !portable(value) {
					continue
				}
				check(t, interp, global, value.String())
			}
		})
	}
}

// portable reports whether a starlark value prints the same way as
// its counterpart here.
func portable(v starlark.Value) bool {
	switch v := v.(type) {
	case starlark.NoneType, starlark.Bool, starlark.Int:
		return true
	case *starlark.List:
		for i := range v.Len() {
			if !portable(v.Index(i)) {
				return false
			}
		}
		return true
	case starlark.Tuple:
		for _, elem := range v {
			if !portable(elem) {
				return false
			}
		}
		return true
	case *starlark.Dict:
		for _, item := range v.Items() {
			if !portable(item[0]) || !portable(item[1]) {
				return false
			}
		}
		return true
	}
	return false
}
