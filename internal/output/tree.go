package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 30
)

// FileEntry is a generated file shown in the summary tree.
type FileEntry struct {
	// Path is relative to the package root, slash separated.
	Path string

	// Description is shown next to the file name.
	Description string

	// Status is StatusCreated or StatusUpdated.
	Status string
}

type treeNode struct {
	name     string
	entry    *FileEntry
	children []*treeNode
}

func (n *treeNode) isDir() bool {
	return n.entry == nil
}

// RenderFileTree renders files under a root directory name with
// descriptions aligned at a fixed column. Directories sort before files.
func RenderFileTree(root string, files []FileEntry) string {
	if len(files) == 0 {
		return ""
	}

	top := &treeNode{name: root}
	for i := range files {
		f := &files[i]
		parts := strings.Split(filepath.ToSlash(f.Path), "/")
		cur := top
		for j, part := range parts {
			child := cur.child(part)
			if child == nil {
				child = &treeNode{name: part}
				cur.children = append(cur.children, child)
			}
			if j == len(parts)-1 {
				child.entry = f
			}
			cur = child
		}
	}
	top.sort()

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(root + "/"))
	sb.WriteString("\n")
	for i, c := range top.children {
		c.render(&sb, "", i == len(top.children)-1)
	}
	return sb.String()
}

func (n *treeNode) child(name string) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (n *treeNode) sort() {
	sort.Slice(n.children, func(i, j int) bool {
		a, b := n.children[i], n.children[j]
		if a.isDir() != b.isDir() {
			return a.isDir()
		}
		return a.name < b.name
	})
	for _, c := range n.children {
		c.sort()
	}
}

func (n *treeNode) render(sb *strings.Builder, prefix string, last bool) {
	connector := treeEdge
	if last {
		connector = treeLast
	}

	line := prefix + connector + n.name
	if n.isDir() {
		line += "/"
	}

	if n.entry != nil && (n.entry.Description != "" || n.entry.Status != "") {
		// pad on rune count so the box drawing characters do not skew alignment
		pad := descriptionColumn - len([]rune(line))
		if pad < 2 {
			pad = 2
		}
		line += strings.Repeat(" ", pad)
		if n.entry.Description != "" {
			line += StyleMuted.Render(n.entry.Description)
		}
		if n.entry.Status != "" {
			line += " " + StatusStyle(n.entry.Status).Render("("+n.entry.Status+")")
		}
	}

	sb.WriteString(line)
	sb.WriteString("\n")

	next := prefix + treeVert
	if last {
		next = prefix + treeSpace
	}
	for i, c := range n.children {
		c.render(sb, next, i == len(n.children)-1)
	}
}
