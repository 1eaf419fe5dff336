package schema

import (
	"fmt"
	"strings"

	"github.com/erraggy/jsonschemadoc/value"
)

// Validations returns the human-readable constraint sentences for the node,
// in keyword order. Numeric kinds list their range rules ahead of the
// keywords shared by every kind.
func (n *Node) Validations() []string {
	var rules []string
	switch n.kind {
	case KindInteger, KindNumber:
		rules = n.numericRules(rules)
		rules = n.commonRules(rules)
	case KindString:
		rules = n.commonRules(rules)
		rules = n.stringRules(rules)
	case KindArray:
		rules = n.commonRules(rules)
		rules = n.arrayRules(rules)
	case KindObject:
		rules = n.commonRules(rules)
		rules = n.objectRules(rules)
	default:
		rules = n.commonRules(rules)
	}
	return rules
}

func (n *Node) commonRules(rules []string) []string {
	if enum, ok := n.Lookup("enum"); ok {
		candidates, isList := enum.AsArray()
		if !isList {
			candidates = []value.Value{enum}
		}
		parts := make([]string, len(candidates))
		for i, c := range candidates {
			parts[i] = Simplify(c)
		}
		rules = append(rules, fmt.Sprintf("It must be equal to one of the elements in [%s]", strings.Join(parts, ", ")))
	}
	// allOf, anyOf, oneOf, not and definitions are recognized but not described.
	return rules
}

func (n *Node) numericRules(rules []string) []string {
	if v, ok := n.Lookup("multipleOf"); ok {
		rules = append(rules, "It must be multiple of "+v.Text())
	}
	if v, ok := n.Lookup("maximum"); ok {
		if n.Get("exclusiveMaximum").Truthy() {
			rules = append(rules, "It must be lower than or equal to "+v.Text())
		} else {
			rules = append(rules, "It must be lower than "+v.Text())
		}
	}
	if v, ok := n.Lookup("minimum"); ok {
		if n.Get("exclusiveMinimum").Truthy() {
			rules = append(rules, "It must be greater than or equal to "+v.Text())
		} else {
			rules = append(rules, "It must be greater than "+v.Text())
		}
	}
	return rules
}

func (n *Node) stringRules(rules []string) []string {
	if v, ok := n.Lookup("maxLength"); ok {
		rules = append(rules, "Its length must be less than or equal to "+v.Text())
	}
	if v, ok := n.Lookup("minLength"); ok {
		rules = append(rules, "Its length must be greater than or equal to "+v.Text())
	}
	if v, ok := n.Lookup("pattern"); ok {
		rules = append(rules, `It must match to regexp "`+v.Text()+`"`)
	}
	if v, ok := n.Lookup("format"); ok {
		rules = append(rules, "It must be formatted as "+v.Text())
	}
	return rules
}

func (n *Node) arrayRules(rules []string) []string {
	if b, ok := n.Get("additionalItems").AsBool(); ok && b {
		rules = append(rules, "It allows additional items")
	}
	if v, ok := n.Lookup("maxItems"); ok {
		rules = append(rules, "Its size must be less than or equal to "+v.Text())
	}
	if v, ok := n.Lookup("minItems"); ok {
		rules = append(rules, "Its size must be greater than or equal to "+v.Text())
	}
	if n.Get("uniqueItems").Truthy() {
		rules = append(rules, "Its elements must be unique")
	}
	// A scalar item's own constraints show on the array's row; composite
	// items get rows of their own.
	if items := n.Get("items"); isSchema(items) {
		item := New(n.name, items, false)
		if !item.kind.IsComposite() {
			rules = append(rules, item.Validations()...)
		}
	}
	return rules
}

func (n *Node) objectRules(rules []string) []string {
	if v, ok := n.Lookup("maxProperties"); ok {
		rules = append(rules, "Its numbers of properties must be less than or equal to "+v.Text())
	}
	if v, ok := n.Lookup("minProperties"); ok {
		rules = append(rules, "Its numbers of properties must be greater than or equal to "+v.Text())
	}
	if v, ok := n.Lookup("required"); ok {
		rules = append(rules, "Its property set must contain all elements in "+v.String())
	}
	deps, _ := n.Get("dependencies").AsObject()
	for key, dep := range deps.All() {
		switch dep.Kind() {
		case value.KindObject:
			rules = append(rules, fmt.Sprintf(`The "%s" property must match to %s`, key, Simplify(dep)))
		case value.KindArray:
			names, _ := dep.AsArray()
			parts := make([]string, len(names))
			for i, name := range names {
				parts[i] = Simplify(name)
			}
			rules = append(rules, fmt.Sprintf(`The "%s" property depends on [%s]`, key, strings.Join(parts, ", ")))
		}
	}
	return rules
}

// isSchema reports whether v can stand for a schema: a mapping, or a type
// name string used as shorthand.
func isSchema(v value.Value) bool {
	k := v.Kind()
	return k == value.KindObject || k == value.KindString
}
