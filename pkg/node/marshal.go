package node

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalJSON keeps attribute and child order. Table nodes become arrays of
// their children, rows and plain nodes become objects.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encodeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encodeJSON(buf *bytes.Buffer) error {
	if n.Kind == Table {
		buf.WriteByte('[')
		first := true
		if len(n.Attrs) > 0 {
			if err := encodeAttrs(buf, n.Attrs, nil); err != nil {
				return err
			}
			first = false
		}
		for _, c := range n.Children {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := c.encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	}

	return encodeAttrs(buf, n.Attrs, n.Children)
}

func encodeAttrs(buf *bytes.Buffer, attrs []Attr, children []*Node) error {
	buf.WriteByte('{')
	first := true
	sep := func() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
	}

	for _, a := range attrs {
		sep()
		if err := writeJSONString(buf, a.Key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if a.Flags&FmtNumeric != 0 && isNumber(a.Value) {
			buf.WriteString(a.Value)
			continue
		}
		if err := writeJSONString(buf, a.Value); err != nil {
			return err
		}
	}

	for _, c := range children {
		sep()
		if err := writeJSONString(buf, c.Name); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := c.encodeJSON(buf); err != nil {
			return err
		}
	}

	buf.WriteByte('}')
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

func isNumber(s string) bool {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseUint(s, 10, 64); err == nil {
		return true
	}
	return false
}

// MarshalYAML returns an ordered document so yaml.v3 does not sort keys.
func (n *Node) MarshalYAML() (any, error) {
	return n.yamlNode(), nil
}

func (n *Node) yamlNode() *yaml.Node {
	if n.Kind == Table {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		if len(n.Attrs) > 0 {
			seq.Content = append(seq.Content, yamlMapping(n.Attrs, nil))
		}
		for _, c := range n.Children {
			seq.Content = append(seq.Content, c.yamlNode())
		}
		return seq
	}

	return yamlMapping(n.Attrs, n.Children)
}

func yamlMapping(attrs []Attr, children []*Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, a := range attrs {
		tag := "!!str"
		if a.Flags&FmtNumeric != 0 && isNumber(a.Value) {
			tag = "!!int"
		}
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: a.Value},
		)
	}
	for _, c := range children {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.Name},
			c.yamlNode(),
		)
	}
	return m
}
