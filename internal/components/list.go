package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Node is one projected record: its stable key and its rendered view.
type Node struct {
	Key  string
	View templ.Component
}

// Projection maps records to nodes one-to-one in input order. Keys come
// from the record content so they stay stable when the list is reordered.
func Projection[R any](records []R, key func(R) string, view func(R) templ.Component) []Node {
	nodes := make([]Node, 0, len(records))
	for _, record := range records {
		nodes = append(nodes, Node{Key: key(record), View: view(record)})
	}
	return nodes
}

// ListOptions configures the container List renders.
type ListOptions struct {
	Tag       string
	ItemTag   string
	Class     string
	ItemClass string
}

// List renders nodes inside a container element, wrapping each in an item
// element tagged with data-key. An empty node list renders an empty
// container.
func List(opts ListOptions, nodes []Node) templ.Component {
	tag := opts.Tag
	if tag == "" {
		tag = "div"
	}
	itemTag := opts.ItemTag
	if itemTag == "" {
		itemTag = "div"
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.open(tag, "class", opts.Class)
		for _, node := range nodes {
			h.open(itemTag, "class", opts.ItemClass, "data-key", node.Key)
			h.component(node.View)
			h.close(itemTag)
		}
		h.close(tag)
		return h.err
	})
}
