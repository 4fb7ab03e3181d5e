package dom

import (
	"strings"

	"github.com/phanxgames/scrollkit"
)

type declaration struct {
	name  string
	value string
}

// Style is the inline style of an element. Assignments are written back to
// the element's style attribute in declaration order.
type Style struct {
	el    *Element
	decls []declaration
}

// parse replaces the declarations with the ones in attr ("a: b; c: d").
func (s *Style) parse(attr string) {
	s.decls = s.decls[:0]
	for _, part := range strings.Split(attr, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		s.set(name, value)
	}
}

// Get returns the value of a CSS property. name may be written in either
// camelCase ("backgroundColor") or kebab-case ("background-color").
func (s *Style) Get(name string) string {
	name = CSSName(name)
	for _, d := range s.decls {
		if d.name == name {
			return d.value
		}
	}
	return ""
}

// Len returns the number of declarations.
func (s *Style) Len() int {
	return len(s.decls)
}

// Property returns nil; styles have no nested holders.
func (s *Style) Property(string) scrollkit.Target {
	return nil
}

// SetProperty sets a CSS property. An empty value removes it.
func (s *Style) SetProperty(name, value string) {
	name = CSSName(name)
	value = strings.TrimSpace(value)
	if value == "" {
		s.remove(name)
	} else {
		s.set(name, value)
	}
	s.write()
}

func (s *Style) set(name, value string) {
	for i := range s.decls {
		if s.decls[i].name == name {
			s.decls[i].value = value
			return
		}
	}
	s.decls = append(s.decls, declaration{name: name, value: value})
}

func (s *Style) remove(name string) {
	for i := range s.decls {
		if s.decls[i].name == name {
			s.decls = append(s.decls[:i], s.decls[i+1:]...)
			return
		}
	}
}

// write serializes the declarations into the style attribute without
// re-parsing them.
func (s *Style) write() {
	if len(s.decls) == 0 {
		removeAttr(s.el.node, "style")
		return
	}
	var b strings.Builder
	for i, d := range s.decls {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.name)
		b.WriteString(": ")
		b.WriteString(d.value)
		b.WriteByte(';')
	}
	setAttr(s.el.node, "style", b.String())
}

// CSSName converts a scripting property name to its CSS form:
// "backgroundColor" becomes "background-color" and "webkitTransform"
// becomes "-webkit-transform". cssFloat maps to float. Names that already
// contain a dash are lower-cased only.
func CSSName(name string) string {
	if name == "cssFloat" {
		return "float"
	}
	if strings.Contains(name, "-") {
		return strings.ToLower(name)
	}
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, prefix := range []string{"webkit", "moz", "ms"} {
		if len(name) > len(prefix) && strings.HasPrefix(name, prefix) && isUpper(name[len(prefix)]) {
			b.WriteByte('-')
			break
		}
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isUpper(c) {
			b.WriteByte('-')
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}
