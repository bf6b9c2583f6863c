package snekvm

import (
	"bytes"
	"math/big"
	"reflect"
	"testing"
)

func TestCodeRoundTrip(t *testing.T) {
	large, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	fn := &Code{
		Name:      "f",
		Filename:  "test.py",
		FirstLine: 3,
		ArgNames:  []string{"a"},
		KwOnly:    []string{"k"},
		VarArgs:   "rest",
		VarNames:  []string{"a", "k", "rest"},
		Instrs: []Instr{
			ins(OpLoadFast, CountLit(0)),
			ins(OpReturnValue),
		},
	}
	code := module(
		ins(OpSetLineNumber, CountLit(1)),
		ins(OpLoadConst, IntLit{Value: large}),
		ins(OpLoadConst, FloatLit(1.5)),
		ins(OpLoadConst, ComplexLit(complex(0, 2))),
		ins(OpLoadConst, BoolLit(true)),
		ins(OpLoadConst, NoneLit{}),
		ins(OpLoadConst, ListLit{StrLit("a"), BytesLit("\xff\x00"), Int64Lit(-1), ListLit{}}),
		ins(OpLoadConst, CodeLit{Code: fn}),
		ins(OpPopTop),
	)

	for _, format := range []Format{FormatCBOR, FormatYAML} {
		buf := new(bytes.Buffer)
		if err := EncodeCode(buf, code, format); err != nil {
			t.Fatal(err)
		}
		decoded, err := DecodeCode(buf, format)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := decoded.Disassemble(), code.Disassemble(); got != want {
			t.Fatalf("%s: got\n%s\nwant\n%s", format, got, want)
		}
		inner := decoded.Instrs[7].Arg.(CodeLit).Code
		if !reflect.DeepEqual(inner, fn) {
			t.Fatalf("%s: got %#v", format, inner)
		}
		if v := decoded.Instrs[1].Arg.(IntLit).Value; v.Cmp(large) != 0 {
			t.Fatalf("%s: got %v", format, v)
		}
	}
}

func TestDecodeBadOpcode(t *testing.T) {
	_, err := DecodeCode(bytes.NewReader([]byte("name: m\ninstrs:\n  - op: Bogus\n")), FormatYAML)
	if err == nil {
		t.Fatal("should fail")
	}
	if _, err := ParseFormat("json"); err == nil {
		t.Fatal("should fail")
	}
}
