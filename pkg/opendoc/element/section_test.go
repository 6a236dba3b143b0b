package element

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperties(t *testing.T) {
	p, err := NewProperties([]Property{P("spacing", 10), P("bold", true)})
	require.NoError(t, err)
	assert.Equal(t, []string{"spacing", "bold"}, p.Names())

	p.Set("spacing", Int(20))
	assert.Equal(t, []string{"spacing", "bold"}, p.Names())
	v, _ := p.Get("spacing")
	assert.Equal(t, int64(20), v.Int())

	p.Delete("spacing")
	p.Delete("missing")
	assert.Equal(t, 1, p.Len())
	assert.False(t, p.Has("spacing"))

	var names []string
	for name := range p.All() {
		names = append(names, name)
	}
	assert.Equal(t, []string{"bold"}, names)

	var nilBag *Properties
	assert.Equal(t, 0, nilBag.Len())
	assert.False(t, nilBag.Has("x"))
}

func TestPropertiesClone(t *testing.T) {
	src, err := NewProperties(map[string]any{"border": map[string]any{"top": "single"}})
	require.NoError(t, err)
	cp := src.Clone()
	border, _ := cp.Get("border")
	border.AsArray().Set("bottom", String("double"))

	orig, _ := src.Get("border")
	assert.Equal(t, 1, orig.AsArray().Len())

	byValue, err := NewProperties(*src)
	require.NoError(t, err)
	assert.NotSame(t, src, byValue)
	assert.Equal(t, src.Names(), byValue.Names())
}

func TestNewPropertiesRejects(t *testing.T) {
	for _, in := range []any{time.Now(), 42, "bold", []any{1}} {
		_, err := NewProperties(in)
		assert.True(t, IsModelError(err, KindTypeMismatch), "%T", in)
	}
}

func TestSection(t *testing.T) {
	s, err := NewSection("intro", map[string]any{"pageSize": "A4"})
	require.NoError(t, err)
	assert.Equal(t, "intro", s.Name())
	assert.True(t, s.HasProperties())
	assert.Equal(t, CapSection, s.Interface())

	s.SetName("body")
	assert.Equal(t, "body", s.Name())

	p1, _ := NewParagraph(nil)
	tbl, _ := NewTable(nil)
	require.NoError(t, s.AddElement(p1))
	require.NoError(t, s.AddElement(tbl))

	assert.Equal(t, 2, s.Len())
	assert.Same(t, p1, s.At(0))
	assert.Nil(t, s.At(2))
	assert.Nil(t, s.At(-1))

	run, _ := NewRun("x", nil)
	err = s.AddElement(run)
	assert.True(t, IsModelError(err, KindComposition))
	assert.Equal(t, 2, s.Len())
	assert.True(t, IsModelError(s.AddElement(nil), KindComposition))

	var seen []Capability
	for _, el := range s.All() {
		seen = append(seen, el.Interface())
	}
	assert.Equal(t, []Capability{CapParagraph, CapTable}, seen)

	_, err = NewSection("bad", time.Now())
	assert.Error(t, err)
}

func TestDocument(t *testing.T) {
	d := NewDocument()
	a, _ := NewSection("a", nil)
	b, _ := NewSection("b", nil)
	require.NoError(t, d.AddSection(a))
	require.NoError(t, d.AddSection(b))
	assert.Error(t, d.AddSection(nil))

	assert.Same(t, b, d.Section("b"))
	assert.Nil(t, d.Section("c"))
	assert.Len(t, d.Sections(), 2)
}
