package snekvm

import (
	"fmt"
	"io"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the serialization of compiled code.
type Format string

const (
	FormatCBOR Format = "cbor"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCBOR, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown code format: %q", s)
}

type wireCode struct {
	Name      string      `cbor:"name" yaml:"name"`
	Filename  string      `cbor:"filename" yaml:"filename"`
	FirstLine int         `cbor:"first_line" yaml:"first_line"`
	VarNames  []string    `cbor:"var_names,omitempty" yaml:"var_names,omitempty"`
	ArgNames  []string    `cbor:"arg_names,omitempty" yaml:"arg_names,omitempty"`
	KwOnly    []string    `cbor:"kw_only,omitempty" yaml:"kw_only,omitempty"`
	VarArgs   string      `cbor:"var_args,omitempty" yaml:"var_args,omitempty"`
	VarKw     string      `cbor:"var_kw,omitempty" yaml:"var_kw,omitempty"`
	Instrs    []wireInstr `cbor:"instrs" yaml:"instrs"`
}

type wireInstr struct {
	Op  string   `cbor:"op" yaml:"op"`
	Arg *wireLit `cbor:"arg,omitempty" yaml:"arg,omitempty"`
}

type wireLit struct {
	Type  string    `cbor:"type" yaml:"type"`
	Str   string    `cbor:"str,omitempty" yaml:"str,omitempty"`
	Bytes []byte    `cbor:"bytes,omitempty" yaml:"bytes,omitempty"`
	Int   string    `cbor:"int,omitempty" yaml:"int,omitempty"`
	Real  float64   `cbor:"real,omitempty" yaml:"real,omitempty"`
	Imag  float64   `cbor:"imag,omitempty" yaml:"imag,omitempty"`
	Bool  bool      `cbor:"bool,omitempty" yaml:"bool,omitempty"`
	Count int       `cbor:"count,omitempty" yaml:"count,omitempty"`
	List  []wireLit `cbor:"list,omitempty" yaml:"list,omitempty"`
	Code  *wireCode `cbor:"code,omitempty" yaml:"code,omitempty"`
}

func toWireCode(code *Code) *wireCode {
	ret := &wireCode{
		Name:      code.Name,
		Filename:  code.Filename,
		FirstLine: code.FirstLine,
		VarNames:  code.VarNames,
		ArgNames:  code.ArgNames,
		KwOnly:    code.KwOnly,
		VarArgs:   code.VarArgs,
		VarKw:     code.VarKw,
		Instrs:    make([]wireInstr, len(code.Instrs)),
	}
	for i, instr := range code.Instrs {
		ret.Instrs[i].Op = instr.Op.String()
		if instr.Arg != nil {
			lit := toWireLit(instr.Arg)
			ret.Instrs[i].Arg = &lit
		}
	}
	return ret
}

func toWireLit(lit Literal) wireLit {
	switch v := lit.(type) {
	case StrLit:
		return wireLit{Type: "str", Str: string(v)}
	case BytesLit:
		return wireLit{Type: "bytes", Bytes: []byte(v)}
	case IntLit:
		return wireLit{Type: "int", Int: v.Value.String()}
	case FloatLit:
		return wireLit{Type: "float", Real: float64(v)}
	case ComplexLit:
		return wireLit{Type: "complex", Real: real(v), Imag: imag(v)}
	case BoolLit:
		return wireLit{Type: "bool", Bool: bool(v)}
	case CountLit:
		return wireLit{Type: "count", Count: int(v)}
	case NoneLit:
		return wireLit{Type: "none"}
	case ListLit:
		list := make([]wireLit, len(v))
		for i, elem := range v {
			list[i] = toWireLit(elem)
		}
		return wireLit{Type: "list", List: list}
	case CodeLit:
		return wireLit{Type: "code", Code: toWireCode(v.Code)}
	}
	panic(fmt.Errorf("bad literal %T", lit))
}

func (w *wireCode) code() (*Code, error) {
	ret := &Code{
		Name:      w.Name,
		Filename:  w.Filename,
		FirstLine: w.FirstLine,
		VarNames:  w.VarNames,
		ArgNames:  w.ArgNames,
		KwOnly:    w.KwOnly,
		VarArgs:   w.VarArgs,
		VarKw:     w.VarKw,
		Instrs:    make([]Instr, len(w.Instrs)),
	}
	for i, instr := range w.Instrs {
		op, ok := ParseOpCode(instr.Op)
		if !ok {
			return nil, fmt.Errorf("%s: instruction %d: unknown opcode %q", w.Name, i, instr.Op)
		}
		ret.Instrs[i].Op = op
		if instr.Arg != nil {
			lit, err := instr.Arg.literal()
			if err != nil {
				return nil, fmt.Errorf("%s: instruction %d: %w", w.Name, i, err)
			}
			ret.Instrs[i].Arg = lit
		}
	}
	return ret, nil
}

func (w *wireLit) literal() (Literal, error) {
	switch w.Type {
	case "str":
		return StrLit(w.Str), nil
	case "bytes":
		return BytesLit(w.Bytes), nil
	case "int":
		v, ok := new(big.Int).SetString(w.Int, 10)
		if !ok {
			return nil, fmt.Errorf("bad int literal %q", w.Int)
		}
		return IntLit{Value: v}, nil
	case "float":
		return FloatLit(w.Real), nil
	case "complex":
		return ComplexLit(complex(w.Real, w.Imag)), nil
	case "bool":
		return BoolLit(w.Bool), nil
	case "count":
		return CountLit(w.Count), nil
	case "none":
		return NoneLit{}, nil
	case "list":
		list := make(ListLit, len(w.List))
		for i := range w.List {
			elem, err := w.List[i].literal()
			if err != nil {
				return nil, err
			}
			list[i] = elem
		}
		return list, nil
	case "code":
		if w.Code == nil {
			return nil, fmt.Errorf("code literal without code")
		}
		code, err := w.Code.code()
		if err != nil {
			return nil, err
		}
		return CodeLit{Code: code}, nil
	}
	return nil, fmt.Errorf("unknown literal type %q", w.Type)
}

// EncodeCode writes code and its nested code literals.
func EncodeCode(w io.Writer, code *Code, format Format) error {
	wire := toWireCode(code)
	switch format {
	case FormatCBOR:
		return cbor.NewEncoder(w).Encode(wire)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(wire); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown code format: %q", format)
}

func DecodeCode(r io.Reader, format Format) (*Code, error) {
	var wire wireCode
	switch format {
	case FormatCBOR:
		if err := cbor.NewDecoder(r).Decode(&wire); err != nil {
			return nil, fmt.Errorf("decode code: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&wire); err != nil {
			return nil, fmt.Errorf("decode code: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown code format: %q", format)
	}
	return wire.code()
}
