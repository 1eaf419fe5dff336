package schema

import "iter"

// Row is the documentation record for one flattened node.
type Row struct {
	Name        string   `json:"name" yaml:"name"`
	Type        string   `json:"type" yaml:"type"`
	Required    bool     `json:"required" yaml:"required"`
	Description string   `json:"description" yaml:"description"`
	Validations []string `json:"validations" yaml:"validations"`
}

// NewRow builds the row for n.
func NewRow(n *Node) Row {
	validations := n.Validations()
	if validations == nil {
		validations = []string{}
	}
	return Row{
		Name:        n.Name(),
		Type:        n.Type(),
		Required:    n.Required(),
		Description: n.Description(),
		Validations: validations,
	}
}

// DisplayType returns the row type with a " (required)" suffix for required
// properties.
func (r Row) DisplayType() string {
	if r.Required {
		return r.Type + " (required)"
	}
	return r.Type
}

// AllRows lazily yields the row of every node Flatten yields for root.
func AllRows(root *Node) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		for n, err := range root.Flatten() {
			if err != nil {
				yield(Row{}, err)
				return
			}
			if !yield(NewRow(n), nil) {
				return
			}
		}
	}
}

// Rows returns the rows for every flattened descendant of root, in order.
func Rows(root *Node) ([]Row, error) {
	rows := []Row{}
	for row, err := range AllRows(root) {
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
