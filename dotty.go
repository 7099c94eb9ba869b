package rope

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[node]int),
		max:     1,
	}
}

func (ids nodeids) find(n node) int {
	return ids.idTable[n]
}

func (ids *nodeids) alloc(n node) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Rope2Dot outputs the internal structure of a Rope in Graphviz DOT format
// (for debugging purposes).
func Rope2Dot(text Rope, w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable()
	empties := 0
	err := traverse(text.node(), 0, 0, func(n node, pos uint64, depth int) error {
		switch nd := n.(type) {
		case *innerNode:
			ID := ids.alloc(nd)
			fmt.Fprintf(&nodelist, "\"%d\" [label=%d %s];\n", ID, nd.weight, nodeDotStyles(false))
			for _, child := range []node{nd.left, nd.right} {
				if _, ok := child.(emptyNode); ok {
					empties++
					nilid := 10000 + empties
					fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNodeStyle)
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
					continue
				}
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			}
		case *leafNode:
			ID := ids.alloc(nd)
			label := fmt.Sprintf("%d @%d\\n“%s”", nd.length, pos, dotEscape(strstart(nd.text)))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(true))
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("rope DOT: %s", err.Error())
		return err
	}
	_, err = fmt.Fprintf(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n%s%s}\n",
		nodelist.String(), edgelist.String())
	return err
}

const emptyNodeStyle = "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}
