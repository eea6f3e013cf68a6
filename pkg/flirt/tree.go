package flirt

import "github.com/blend-tea/SigViewer/pkg/logflags"

// walkTree performs the recursive descent of spec section 4.4, appending
// every module reached to modules in depth-first, child-in-declaration
// order. path is the pattern-node sequence accumulated from the tree
// root to the current position; each recursive call into a child gets
// its own extended copy so sibling subtrees never see each other's path.
func walkTree(c *cursor, path []PatternNode, modules *[]Module) (ok bool, errMsg string) {
	treeNodes := c.multi()
	if c.bad() {
		return false, "Unexpected EOF in tree"
	}

	if treeNodes == 0 {
		return decodeLeaf(c, path, modules)
	}

	if logflags.Tree() {
		logflags.TreeLogger().Debugf("branch with %d children at depth %d", treeNodes, len(path))
	}

	for i := uint32(0); i < treeNodes; i++ {
		node, ok := decodeNode(c)
		if !ok {
			return false, "Parse error in signature tree"
		}

		childPath := make([]PatternNode, len(path)+1)
		copy(childPath, path)
		childPath[len(path)] = node

		if ok, errMsg := walkTree(c, childPath, modules); !ok {
			return false, errMsg
		}
	}

	return true, ""
}
