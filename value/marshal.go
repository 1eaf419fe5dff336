package value

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// Marshal writes v as canonical JSON: members in source order, numbers as
// their literal, and ", " / ": " separators, e.g.
//
//	{"type": "string", "minLength": 5}
func Marshal(v Value) []byte {
	var buf bytes.Buffer
	writeValue(&buf, v, "", "")
	return buf.Bytes()
}

// MarshalIndent is like Marshal but places each array item and object member
// on its own line, indented by indent per nesting level.
func MarshalIndent(v Value, indent string) []byte {
	var buf bytes.Buffer
	writeValue(&buf, v, indent, "\n")
	return buf.Bytes()
}

func writeValue(buf *bytes.Buffer, v Value, indent, prefix string) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		buf.WriteString(v.s)
	case KindString:
		writeString(buf, v.s)
	case KindArray:
		if len(v.items) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		inner := prefix + indent
		for i, item := range v.items {
			writeSeparator(buf, i, indent, inner)
			writeValue(buf, item, indent, inner)
		}
		writeClose(buf, indent, prefix)
		buf.WriteByte(']')
	case KindObject:
		if v.obj.Len() == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		inner := prefix + indent
		for i, m := range v.obj.members {
			writeSeparator(buf, i, indent, inner)
			writeString(buf, m.Key)
			buf.WriteString(": ")
			writeValue(buf, m.Value, indent, inner)
		}
		writeClose(buf, indent, prefix)
		buf.WriteByte('}')
	}
}

func writeSeparator(buf *bytes.Buffer, i int, indent, inner string) {
	if indent == "" {
		if i > 0 {
			buf.WriteString(", ")
		}
		return
	}
	if i > 0 {
		buf.WriteByte(',')
	}
	buf.WriteString(inner)
}

func writeClose(buf *bytes.Buffer, indent, prefix string) {
	if indent != "" {
		buf.WriteString(prefix)
	}
}

func writeString(buf *bytes.Buffer, s string) {
	b, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		buf.WriteString(strconv.Quote(s))
		return
	}
	buf.Write(b)
}

// ToYAMLNode converts v into an ordered yaml.Node tree suitable for
// yaml.Marshal.
func ToYAMLNode(v Value) *yaml.Node {
	switch v.kind {
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.b)}
	case KindNumber:
		tag := "!!int"
		if strings.ContainsAny(v.s, ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.s}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}
	case KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.items {
			n.Content = append(n.Content, ToYAMLNode(item))
		}
		return n
	case KindObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range v.obj.members {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key},
				ToYAMLNode(m.Value),
			)
		}
		return n
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
