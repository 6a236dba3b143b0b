package formatter

import (
	"fmt"
	"maps"
	"slices"

	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/element"
	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/xml"
)

// Encoder writes one property under root. It receives the canonical
// property name and returns true when the property was processed, even if
// nothing was appended.
type Encoder func(f *Formatter, name string, val element.Value, el element.Element, root *xml.Node) bool

// Type tags understood by every formatter.
const (
	TagBool    = "bool"
	TagDecimal = "decimal"
	TagText    = "text"
)

// Dialect describes a family of properties: which public names alias to
// which canonical names, which canonical names use which type tag, and the
// extra encoders the tags need.
type Dialect struct {
	Name     string
	Aliases  map[string]string
	Types    map[string]string
	Encoders map[string]Encoder
	// Merge lists element names written at most once per Format call.
	// Later nodes of the same name fold their attributes into the first.
	Merge []string
}

// UnknownFunc is called for every property whose tag has no encoder.
type UnknownFunc func(dialect, tag, name string)

// Option configures a Formatter.
type Option func(*Formatter)

// WithUnknown installs a hook called for skipped properties. By default
// unknown properties are dropped silently.
func WithUnknown(fn UnknownFunc) Option {
	return func(f *Formatter) { f.unknown = fn }
}

// Formatter translates the properties of one element into markup. Its
// tables are fixed by New, so one Formatter may be shared between
// goroutines as long as each call writes to its own root.
type Formatter struct {
	name     string
	aliases  map[string]string
	types    map[string]string
	encoders map[string]Encoder
	merge    []string
	unknown  UnknownFunc
}

// New builds a formatter for d.
func New(d Dialect, opts ...Option) *Formatter {
	f := &Formatter{name: d.Name, merge: slices.Clone(d.Merge)}
	f.initMap(d.Aliases)
	maps.Copy(f.types, d.Types)
	f.register(TagBool, encodeBool)
	f.register(TagDecimal, encodeDecimal)
	f.register(TagText, encodeText)
	for tag, enc := range d.Encoders {
		f.register(tag, enc)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Shared returns a formatter with no aliases or type map: every property
// name is its own tag, so only properties literally named bool, decimal or
// text are written.
func Shared(opts ...Option) *Formatter {
	return New(Dialect{Name: "shared"}, opts...)
}

// initMap resets the type map and installs aliases.
func (f *Formatter) initMap(aliases map[string]string) {
	f.types = make(map[string]string)
	f.aliases = make(map[string]string, len(aliases))
	maps.Copy(f.aliases, aliases)
	if f.encoders == nil {
		f.encoders = make(map[string]Encoder)
	}
}

func (f *Formatter) register(tag string, enc Encoder) {
	if tag == "" {
		panic(&ContractViolation{Dialect: f.name, Message: "encoder registered for an empty tag"})
	}
	if enc == nil {
		panic(&ContractViolation{Dialect: f.name, Tag: tag, Message: "encoder is nil"})
	}
	f.encoders[tag] = enc
}

// Name returns the dialect name.
func (f *Formatter) Name() string { return f.name }

// Format writes every property of el under root and reports whether at
// least one property was processed. Children already under root are left
// untouched.
func (f *Formatter) Format(el element.Element, root *xml.Node) bool {
	last := root.LastChild
	modified := false
	for name, val := range el.Properties().All() {
		tag := f.Lookup(name)
		if tag == "" {
			continue
		}
		if f.Process(tag, name, val, el, root) {
			modified = true
		}
	}
	if len(f.merge) > 0 {
		first := root.FirstChild
		if last != nil {
			first = last.NextSibling
		}
		f.mergeFrom(first)
	}
	return modified
}

// mergeFrom folds repeated merge elements among n and its following
// siblings into the first occurrence. Later attributes win.
func (f *Formatter) mergeFrom(n *xml.Node) {
	kept := make(map[string]*xml.Node)
	for n != nil {
		next := n.NextSibling
		if xml.IsElement(n) && slices.Contains(f.merge, n.Data) {
			q := xml.QName(n)
			if dst, ok := kept[q]; ok {
				for _, a := range n.Attr {
					key := a.Name.Local
					if a.Name.Space != "" {
						key = a.Name.Space + ":" + key
					}
					xml.SetAttr(dst, key, a.Value)
				}
				xml.Remove(n)
			} else {
				kept[q] = n
			}
		}
		n = next
	}
}

// Process dispatches one property to the encoder registered for tag.
// Properties whose tag has no encoder are skipped and yield false.
func (f *Formatter) Process(tag, name string, val element.Value, el element.Element, root *xml.Node) bool {
	enc, ok := f.encoders[tag]
	if !ok {
		if f.unknown != nil {
			f.unknown(f.name, tag, name)
		}
		return false
	}
	return enc(f, f.LookupAlias(name), val, el, root)
}

// Lookup returns the type tag for a property name. Aliases are resolved
// first; a canonical name without a type map entry is its own tag.
func (f *Formatter) Lookup(name string) string {
	name = f.LookupAlias(name)
	if tag, ok := f.types[name]; ok {
		return tag
	}
	return name
}

// LookupAlias returns the canonical name for name, or name itself.
func (f *Formatter) LookupAlias(name string) string {
	return LookupAliasIn(f.aliases, name)
}

// LookupAliasIn resolves name against an explicit alias table.
func LookupAliasIn(aliases map[string]string, name string) string {
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// HasEncoder reports whether tag has a registered encoder.
func (f *Formatter) HasEncoder(tag string) bool {
	_, ok := f.encoders[tag]
	return ok
}

// Dynamic wraps an encoder whose result is only known at run time. A
// result that is not a bool panics with a ContractViolation, since callers
// rely on the processed signal.
func Dynamic(tag string, fn func(f *Formatter, name string, val element.Value, el element.Element, root *xml.Node) any) Encoder {
	return func(f *Formatter, name string, val element.Value, el element.Element, root *xml.Node) bool {
		res := fn(f, name, val, el, root)
		ok, isBool := res.(bool)
		if !isBool {
			panic(&ContractViolation{
				Dialect: f.name,
				Tag:     tag,
				Message: fmt.Sprintf("encoder did not return a boolean, got %T", res),
			})
		}
		return ok
	}
}

func encodeBool(f *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
	return f.AppendSimpleValue(root, name, onOffValue(val))
}

func encodeDecimal(f *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
	return f.AppendSimpleValue(root, name, element.Int(val.Int()))
}

func encodeText(f *Formatter, name string, val element.Value, _ element.Element, root *xml.Node) bool {
	return f.AppendSimpleValue(root, name, val)
}

// AppendSimpleValue appends <w:name w:val="value"/> to root.
func (f *Formatter) AppendSimpleValue(root *xml.Node, name string, val element.Value) bool {
	return f.AppendSimpleValueKey(root, name, val, "val")
}

// AppendSimpleValueKey appends <w:name w:key="value"/> to root. Booleans
// are written as on/off. A null or empty value appends nothing but the
// property still counts as processed.
func (f *Formatter) AppendSimpleValueKey(root *xml.Node, name string, val element.Value, key string) bool {
	if _, ok := val.AsBool(); ok {
		val = onOffValue(val)
	}
	s := val.String()
	if val.IsNull() || s == "" {
		return true
	}
	xml.SetAttr(xml.AppendElement(root, name), key, s)
	return true
}
