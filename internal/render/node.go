package render

import (
	"html"
	"sort"
	"strings"
)

// Node is one element of a rendered document tree. Text is stored raw;
// escaping happens uniformly in the HTML serializer, never at call sites.
type Node struct {
	Tag      string
	Text     string
	Attrs    map[string]string
	Children []*Node
}

// El builds an element node.
func El(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// Text builds a raw text node.
func Text(s string) *Node {
	return &Node{Text: s}
}

// WithAttr sets one attribute and returns the node for chaining.
func (n *Node) WithAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Append adds child nodes, skipping nils so conditional blocks compose
// cleanly.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Find returns the first descendant (including n itself) with the given
// class attribute, or nil.
func (n *Node) Find(class string) *Node {
	if n.Attrs["class"] == class {
		return n
	}
	for _, c := range n.Children {
		if c.Tag == "" {
			continue
		}
		if found := c.Find(class); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant with the given class attribute, in
// document order.
func (n *Node) FindAll(class string) []*Node {
	var out []*Node
	if n.Attrs["class"] == class {
		out = append(out, n)
	}
	for _, c := range n.Children {
		if c.Tag == "" {
			continue
		}
		out = append(out, c.FindAll(class)...)
	}
	return out
}

// InnerText concatenates all text beneath the node.
func (n *Node) InnerText() string {
	if n.Tag == "" {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.InnerText())
	}
	return b.String()
}

// voidTags never carry children in serialized output.
var voidTags = map[string]bool{"img": true, "br": true, "hr": true}

// HTML serializes the tree. All text and attribute values are escaped here,
// so user-supplied content can never become markup.
func (n *Node) HTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

func (n *Node) writeHTML(b *strings.Builder) {
	if n.Tag == "" {
		b.WriteString(html.EscapeString(n.Text))
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)
	// Stable attribute order keeps output snapshot-friendly.
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(n.Attrs[k]))
		b.WriteString(`"`)
	}

	if voidTags[n.Tag] {
		b.WriteString(" />")
		return
	}

	b.WriteByte('>')
	for _, c := range n.Children {
		c.writeHTML(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}
