// Package ast provides the canonical document tree produced by gomdparse.
// A node is either a text leaf or a tagged element carrying a tag name, an
// ordered attribute list with unique names, ordered children, and a small
// set of meta flags. The tree is independent of any output format.
package ast

import "strings"

// Attr is a single name/value attribute pair.
// Attribute names are unique within one node's attribute list; the list
// preserves insertion order.
type Attr struct {
	Name  string
	Value string
}

// Meta carries node flags that downstream consumers must honor.
type Meta struct {
	// Verbatim marks a node whose text content is raw captured source,
	// never reinterpreted as Markdown and never escaped by renderers.
	Verbatim bool

	// Comment marks an HTML comment node; its children are the captured
	// comment lines.
	Comment bool
}

// IsZero reports whether no meta flag is set.
func (m Meta) IsZero() bool {
	return !m.Verbatim && !m.Comment
}

// Node is a single node in the document tree.
// A text leaf has an empty Name and its content in Literal. A tagged
// element has a non-empty Name and content in Children.
type Node struct {
	// Name is the element tag ("p", "h1", "del", ...). Empty for text leaves.
	Name string

	// Literal holds the text of a leaf node.
	Literal string

	// Attrs is the ordered attribute list. Names are unique.
	Attrs []Attr

	// Children are the ordered child nodes of an element.
	Children []*Node

	// Meta holds the node's flags.
	Meta Meta
}

// Text creates a text leaf node.
func Text(s string) *Node {
	return &Node{Literal: s}
}

// RawText creates a verbatim text leaf that renderers emit unescaped.
func RawText(s string) *Node {
	return &Node{Literal: s, Meta: Meta{Verbatim: true}}
}

// Element creates a tagged element node with the given children.
func Element(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

// IsText reports whether the node is a text leaf.
func (n *Node) IsText() bool {
	return n.Name == ""
}

// AppendChild appends a child node.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
}

// AppendChildren appends several child nodes.
func (n *Node) AppendChildren(children ...*Node) {
	for _, c := range children {
		n.AppendChild(c)
	}
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing an existing value and
// preserving the attribute's original position in the list.
func (n *Node) SetAttr(name, value string) {
	for i, a := range n.Attrs {
		if a.Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// AddClass appends a class token to the node's class attribute,
// space-joining it with any existing value.
func (n *Node) AddClass(class string) {
	if class == "" {
		return
	}
	if existing, ok := n.Attr("class"); ok && existing != "" {
		n.SetAttr("class", existing+" "+class)
		return
	}
	n.SetAttr("class", class)
}

// MergeAttr merges an attribute into the node. Class values concatenate
// (existing value first); any other attribute is overridden.
func (n *Node) MergeAttr(name, value string) {
	if name == "class" {
		n.AddClass(value)
		return
	}
	n.SetAttr(name, value)
}

// MergeAttrs merges an ordered attribute list into the node using
// MergeAttr for each entry.
func (n *Node) MergeAttrs(attrs []Attr) {
	for _, a := range attrs {
		n.MergeAttr(a.Name, a.Value)
	}
}

// InnerText returns the concatenated text of the node and its descendants.
func (n *Node) InnerText() string {
	if n.IsText() {
		return n.Literal
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.InnerText())
	}
	return b.String()
}
