package output

import (
	"path"

	"github.com/disiqueira/gotree/v3"
)

type visualTree struct {
	root gotree.Tree
	dirs map[string]gotree.Tree
}

func (t visualTree) dir(dirPath string) gotree.Tree {
	if dirPath == "." {
		return t.root
	}
	dir, ok := t.dirs[dirPath]
	if !ok {
		dir = t.dir(path.Dir(dirPath)).Add(path.Base(dirPath) + "/")
		t.dirs[dirPath] = dir
	}
	return dir
}

// RenderTree draws entries as a directory tree with the status in front of
// each file name.
func RenderTree(rootLabel string, entries []Entry) string {
	t := visualTree{root: gotree.New(rootLabel), dirs: make(map[string]gotree.Tree)}
	for _, e := range entries {
		t.dir(path.Dir(e.Path)).Add("[" + e.Status + "] " + path.Base(e.Path))
	}
	return t.root.Print()
}
