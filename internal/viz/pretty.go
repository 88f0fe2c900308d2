package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/quintinm-dev/suffix-tree"
)

var (
	rootStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	internalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	leafStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Pretty renders views as an indented, colorized tree dump: root in
// magenta, internal nodes in blue, leaves in green.
func Pretty(views []suffixtree.NodeView) string {
	var b strings.Builder
	var walk func(id, depth int)
	walk = func(id, depth int) {
		v := views[id]
		line := nodeLine(v)
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(line)
		b.WriteString("\n")
		for _, c := range v.Children {
			walk(c, depth+1)
		}
	}
	walk(0, 0)
	return b.String()
}

func nodeLine(v suffixtree.NodeView) string {
	switch {
	case v.IsRoot:
		return rootStyle.Render("root")
	case v.IsLeaf:
		return leafStyle.Render("\"" + v.Label + "\"")
	default:
		return internalStyle.Render("\"" + v.Label + "\"")
	}
}
