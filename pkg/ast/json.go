package ast

import "encoding/json"

// jsonNode is the wire shape of a tagged node: tag name, ordered
// attribute pairs, children, and the meta flag mapping.
type jsonNode struct {
	Name     string            `json:"name"`
	Attrs    [][2]string       `json:"attrs"`
	Children []json.RawMessage `json:"children"`
	Meta     map[string]bool   `json:"meta,omitempty"`
}

// MarshalJSON encodes text leaves as bare JSON strings and tagged nodes
// as 4-field records.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.IsText() {
		return json.Marshal(n.Literal)
	}

	out := jsonNode{
		Name:  n.Name,
		Attrs: make([][2]string, 0, len(n.Attrs)),
	}
	for _, a := range n.Attrs {
		out.Attrs = append(out.Attrs, [2]string{a.Name, a.Value})
	}
	for _, c := range n.Children {
		raw, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, raw)
	}
	if !n.Meta.IsZero() {
		out.Meta = make(map[string]bool, 2)
		if n.Meta.Verbatim {
			out.Meta["verbatim"] = true
		}
		if n.Meta.Comment {
			out.Meta["comment"] = true
		}
	}

	return json.Marshal(out)
}
