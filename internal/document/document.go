// Package document decodes value descriptors from YAML and TOML files.
//
// A document holds a list of groups, each a list of nodes. A node sets
// exactly one content field:
//
//	groups:
//	  - - text: "the error was "
//	    - int: 100
//	    - text: " and "
//	    - quoted: "\nHello\tworld"
//	      lpad: 1
//
// List, struct and tuple nodes render as bracketed lists, Foo { x: 1 } and
// Bar(1, 2). Setting alternate puts one element per line; nested nodes
// inherit it unless they set their own.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/boundfmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidNode       = errors.New("invalid node")
)

// Format is a document encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ParseFormat parses a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Document is the decoded form of a descriptor file.
type Document struct {
	Alternate bool     `yaml:"alternate" toml:"alternate"`
	Groups    [][]Node `yaml:"groups" toml:"groups"`
}

// Node is one value descriptor.
type Node struct {
	Text      *string `yaml:"text" toml:"text"`
	Quoted    *string `yaml:"quoted" toml:"quoted"`
	Int       *int64  `yaml:"int" toml:"int"`
	Uint      *uint64 `yaml:"uint" toml:"uint"`
	Bool      *bool   `yaml:"bool" toml:"bool"`
	Group     []Node  `yaml:"group" toml:"group"`
	List      []Node  `yaml:"list" toml:"list"`
	Struct    *Struct `yaml:"struct" toml:"struct"`
	Tuple     *Tuple  `yaml:"tuple" toml:"tuple"`
	Alternate *bool   `yaml:"alternate" toml:"alternate"`
	LeftPad   uint8   `yaml:"lpad" toml:"lpad"`
	RightPad  uint8   `yaml:"rpad" toml:"rpad"`
}

// Struct describes a named value with named fields.
type Struct struct {
	Name   string  `yaml:"name" toml:"name"`
	Fields []Field `yaml:"fields" toml:"fields"`
}

// Field is one struct field.
type Field struct {
	Name  string `yaml:"name" toml:"name"`
	Value Node   `yaml:"value" toml:"value"`
}

// Tuple describes a named value with positional elements.
type Tuple struct {
	Name  string `yaml:"name" toml:"name"`
	Elems []Node `yaml:"elems" toml:"elems"`
}

// Load reads the file at path, picking the format from its extension.
func Load(path string) ([][]boundfmt.Value, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, format)
}

// Decode decodes data and converts it to value groups.
func Decode(data []byte, format Format) ([][]boundfmt.Value, error) {
	var doc Document
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidNode, undec[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return doc.Values()
}

// Values converts the document to value groups.
func (d Document) Values() ([][]boundfmt.Value, error) {
	groups := make([][]boundfmt.Value, len(d.Groups))
	for i, g := range d.Groups {
		f := boundfmt.FmtDisplay
		f.Alternate = d.Alternate
		vs, err := convertAll(g, f, fmt.Sprintf("groups[%d]", i))
		if err != nil {
			return nil, err
		}
		groups[i] = vs
	}
	return groups, nil
}

func convertAll(nodes []Node, f boundfmt.Fmt, path string) ([]boundfmt.Value, error) {
	vs := make([]boundfmt.Value, len(nodes))
	for i, n := range nodes {
		v, err := n.value(f, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

func (n Node) value(f boundfmt.Fmt, path string) (boundfmt.Value, error) {
	set := 0
	for _, ok := range []bool{
		n.Text != nil, n.Quoted != nil, n.Int != nil, n.Uint != nil,
		n.Bool != nil, n.Group != nil, n.List != nil, n.Struct != nil, n.Tuple != nil,
	} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return boundfmt.Value{}, fmt.Errorf("%w: %s sets %d content fields, want 1", ErrInvalidNode, path, set)
	}
	if n.Alternate != nil {
		f.Alternate = *n.Alternate
	}

	var v boundfmt.Value
	switch {
	case n.Text != nil:
		v = boundfmt.Text(*n.Text)
	case n.Quoted != nil:
		v = boundfmt.Str(*n.Quoted, boundfmt.FmtDebug)
	case n.Int != nil:
		v = boundfmt.Int(*n.Int, f)
	case n.Uint != nil:
		v = boundfmt.Uint(*n.Uint, f)
	case n.Bool != nil:
		v = boundfmt.Bool(*n.Bool, f)
	case n.Group != nil:
		children, err := convertAll(n.Group, f, path+".group")
		if err != nil {
			return boundfmt.Value{}, err
		}
		return boundfmt.Group(children...), nil
	case n.List != nil:
		children, err := convertAll(n.List, f.Indent(), path+".list")
		if err != nil {
			return boundfmt.Value{}, err
		}
		return boundfmt.List(f, children...), nil
	case n.Struct != nil:
		fields := make([]boundfmt.Field, len(n.Struct.Fields))
		for i, fd := range n.Struct.Fields {
			fv, err := fd.Value.value(f.Indent(), fmt.Sprintf("%s.struct.fields[%d]", path, i))
			if err != nil {
				return boundfmt.Value{}, err
			}
			fields[i] = boundfmt.Field{Name: fd.Name, Value: fv}
		}
		return boundfmt.Struct(f, n.Struct.Name, fields...), nil
	default:
		children, err := convertAll(n.Tuple.Elems, f.Indent(), path+".tuple.elems")
		if err != nil {
			return boundfmt.Value{}, err
		}
		return boundfmt.Tuple(f, n.Tuple.Name, children...), nil
	}
	return v.PadLeft(n.LeftPad).PadRight(n.RightPad), nil
}
