package extract

import (
	"io"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tokentools/tokendiff/pkg/match"
	"github.com/tokentools/tokendiff/pkg/tokens"
)

// FromHTML harvests a token document from a saved HTML page. Declarations
// come from <style> blocks and inline style attributes only; external
// stylesheets are not fetched.
func FromHTML(r io.Reader) (*tokens.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	c := newCollector()
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		c.collectRules(s.Text())
	})
	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		class, _ := s.Attr("class")
		c.collectDeclarations(goquery.NodeName(s)+" "+class, style)
	})

	return c.document(), nil
}

// counter tracks occurrence counts while remembering first-seen order so
// ties stay deterministic.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(key string) {
	if key == "" {
		return
	}
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

type collector struct {
	palette     *counter
	backgrounds *counter
	text        *counter
	borders     *counter
	accents     *counter
	fonts       *counter
	spacing     *counter
	radius      *counter
}

func newCollector() *collector {
	return &collector{
		palette:     newCounter(),
		backgrounds: newCounter(),
		text:        newCounter(),
		borders:     newCounter(),
		accents:     newCounter(),
		fonts:       newCounter(),
		spacing:     newCounter(),
		radius:      newCounter(),
	}
}

// collectRules walks a stylesheet's rule blocks. The tokenizer is shallow:
// it only needs selector text and declaration lists, so at-rule wrappers
// and malformed blocks just contribute nothing.
func (c *collector) collectRules(css string) {
	for _, block := range strings.Split(stripComments(css), "}") {
		open := strings.LastIndexByte(block, '{')
		if open < 0 {
			continue
		}
		// Inside an at-rule wrapper the selector is the text after the
		// previous brace, not the whole head.
		selector := block[:open]
		if i := strings.LastIndexAny(selector, "{}"); i >= 0 {
			selector = selector[i+1:]
		}
		c.collectDeclarations(selector, block[open+1:])
	}
}

func (c *collector) collectDeclarations(selector, decls string) {
	accent := isAccentSelector(selector)
	for _, decl := range strings.Split(decls, ";") {
		colon := strings.IndexByte(decl, ':')
		if colon < 0 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(decl[:colon]))
		value := strings.TrimSpace(decl[colon+1:])
		if prop == "" || value == "" {
			continue
		}

		switch {
		case prop == "color":
			c.addColor(c.text, value, accent)
		case prop == "background" || prop == "background-color":
			c.addColor(c.backgrounds, value, accent)
		case prop == "accent-color" || prop == "outline-color":
			c.addColor(c.accents, value, false)
		case prop == "border" || strings.HasPrefix(prop, "border-") && strings.HasSuffix(prop, "color"):
			c.addColor(c.borders, value, false)
		case prop == "font-family":
			c.fonts.add(firstFamily(value))
		case prop == "border-radius":
			for _, v := range numericTokens(value) {
				c.radius.add(v)
			}
		case isSpacingProp(prop):
			for _, v := range numericTokens(value) {
				c.spacing.add(v)
			}
		}
	}
}

// addColor files the first parseable color of a value under its semantic
// group and the global palette, plus the accent group when the selector
// looks accent-like.
func (c *collector) addColor(group *counter, value string, accent bool) {
	hex, ok := firstColorIn(value)
	if !ok {
		return
	}
	c.palette.add(hex)
	group.add(hex)
	if accent {
		c.accents.add(hex)
	}
}

func (c *collector) document() *tokens.Document {
	doc := &tokens.Document{}
	doc.Colors.Palette = c.paletteEntries()
	doc.Colors.Semantic.Backgrounds = entriesByCount(c.backgrounds, "")
	doc.Colors.Semantic.Text = entriesByCount(c.text, "")
	doc.Colors.Semantic.Borders = entriesByCount(c.borders, "")
	doc.Colors.Semantic.Accents = entriesByCount(c.accents, "")
	doc.Typography.FontFamilies = byCount(c.fonts)
	doc.Spacing.Scale = byValue(c.spacing)
	doc.BorderRadius = byValue(c.radius)
	return doc
}

// paletteEntries orders the palette by frequency and tags entries that also
// appear in the accent group.
func (c *collector) paletteEntries() []tokens.PaletteEntry {
	entries := entriesByCount(c.palette, "")
	for i, e := range entries {
		if c.accents.counts[e.Value] > 0 {
			entries[i].Role = "accent"
		}
	}
	return entries
}

func entriesByCount(c *counter, role string) []tokens.PaletteEntry {
	out := make([]tokens.PaletteEntry, 0, len(c.order))
	for _, value := range c.order {
		out = append(out, tokens.PaletteEntry{Value: value, Count: c.counts[value], Role: role})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func byCount(c *counter) []string {
	values := make([]string, len(c.order))
	copy(values, c.order)
	sort.SliceStable(values, func(i, j int) bool {
		return c.counts[values[i]] > c.counts[values[j]]
	})
	return values
}

// byValue sorts scale values numerically ascending, the natural order for
// a spacing or radius scale.
func byValue(c *counter) []string {
	values := make([]string, len(c.order))
	copy(values, c.order)
	sort.SliceStable(values, func(i, j int) bool {
		a, _ := match.ParseNumber(values[i])
		b, _ := match.ParseNumber(values[j])
		return a < b
	})
	return values
}
