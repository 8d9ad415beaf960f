package monitor

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/beevik/prefixtree/v2"
)

// settings holds the monitor's tunable display defaults: how many bytes
// mem dumps by default, how many lines disasm and step show. Field names
// are matched by unambiguous prefix through a prefixtree, the same way
// the teacher's host resolves "set" arguments against its settings
// struct.
type settings struct {
	MemDumpBytes int `doc:"default number of bytes the mem command dumps"`
	DisasmLines  int `doc:"default number of lines the disasm command shows"`
	StepLines    int `doc:"default number of lines the step command shows"`
}

func newSettings() *settings {
	return &settings{
		MemDumpBytes: 64,
		DisasmLines:  10,
		StepLines:    1,
	}
}

type settingsField struct {
	name  string
	index int
	doc   string
}

// settingsTree maps each lowercased field name to its settingsField,
// letting "set mem 32" match MemDumpBytes by unambiguous prefix.
var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	t := reflect.TypeOf(settings{})
	settingsFields = make([]settingsField, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{
			name:  f.Name,
			index: i,
			doc:   doc,
		}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

// display writes every setting's current value, one per line.
func (s *settings) display(w io.Writer) {
	v := reflect.ValueOf(s).Elem()
	for _, f := range settingsFields {
		fmt.Fprintf(w, "    %-16s %v  (%s)\n", f.name, v.Field(f.index).Int(), f.doc)
	}
}

// set resolves name to a unique settings field by prefix and assigns
// value to it.
func (s *settings) set(name, value string) error {
	f, err := settingsTree.FindValue(strings.ToLower(name))
	switch err {
	case nil:
	case prefixtree.ErrPrefixNotFound:
		return fmt.Errorf("unknown setting: %s", name)
	case prefixtree.ErrPrefixAmbiguous:
		return fmt.Errorf("ambiguous setting: %s", name)
	default:
		return err
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %v", f.name, err)
	}

	reflect.ValueOf(s).Elem().Field(f.index).SetInt(int64(n))
	return nil
}
