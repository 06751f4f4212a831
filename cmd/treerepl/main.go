// treerepl is an interactive shell for building and inspecting multiway
// trees. Nodes are addressed by their payload label.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/TheStefan/c-algorithms/tree"
)

// REPL holds the state of the interactive session.
type REPL struct {
	nodes  map[string]*tree.Node[string]
	reader *bufio.Reader
}

func main() {
	fmt.Println("Tree REPL - Interactive Multiway Tree Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		nodes:  make(map[string]*tree.Node[string]),
		reader: bufio.NewReader(os.Stdin),
	}

	for {
		fmt.Print("tree> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "new":
		r.cmdNew(args)

	case "add":
		r.cmdAdd(args)

	case "insert":
		r.cmdInsert(args)

	case "attach":
		r.cmdAttach(args)

	case "detach":
		r.cmdDetach(args)

	case "dump":
		r.cmdDump(args)

	case "walk":
		r.cmdWalk(args)

	case "info":
		r.cmdInfo(args)

	default:
		fmt.Printf("Unknown command: %s (try 'help')\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	fmt.Print(`Commands:
  new <name>                   create a detached root node
  add <parent> <name>          append a child
  insert <parent> <name> <i>   insert a child at index i
  attach <parent> <name>       attach an existing subtree
  detach <name>                detach a subtree from its parent
  dump <name>                  render the subtree rooted at name
  walk <kind> <name> [start]   traverse: preorder, postorder, leaves, parents
  info <name>                  show height, degree, position
  quit                         exit
`)
}

func (r *REPL) get(name string) *tree.Node[string] {
	n, ok := r.nodes[name]
	if !ok {
		fmt.Printf("Unknown node: %s\n", name)
	}
	return n
}

func (r *REPL) cmdNew(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: new <name>")
		return
	}
	if _, exists := r.nodes[args[0]]; exists {
		fmt.Printf("Node %s already exists\n", args[0])
		return
	}
	r.nodes[args[0]] = tree.New(args[0])
}

func (r *REPL) cmdAdd(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: add <parent> <name>")
		return
	}
	parent := r.get(args[0])
	if parent == nil {
		return
	}
	if _, exists := r.nodes[args[1]]; exists {
		fmt.Printf("Node %s already exists\n", args[1])
		return
	}
	r.nodes[args[1]] = parent.AddChild(args[1])
}

func (r *REPL) cmdInsert(args []string) {
	if len(args) != 3 {
		fmt.Println("Usage: insert <parent> <name> <i>")
		return
	}
	parent := r.get(args[0])
	if parent == nil {
		return
	}
	i, err := strconv.Atoi(args[2])
	if err != nil {
		fmt.Printf("Bad index: %s\n", args[2])
		return
	}
	c, err := parent.InsertChild(args[1], i)
	if err != nil {
		fmt.Println(err)
		return
	}
	r.nodes[args[1]] = c
}

func (r *REPL) cmdAttach(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: attach <parent> <name>")
		return
	}
	parent, sub := r.get(args[0]), r.get(args[1])
	if parent == nil || sub == nil {
		return
	}
	if err := parent.AddSubtree(sub); err != nil {
		fmt.Println(err)
	}
}

func (r *REPL) cmdDetach(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: detach <name>")
		return
	}
	if n := r.get(args[0]); n != nil {
		n.Detach()
	}
}

func (r *REPL) cmdDump(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: dump <name>")
		return
	}
	if n := r.get(args[0]); n != nil {
		fmt.Print(n.Dump())
	}
}

func (r *REPL) cmdWalk(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: walk <kind> <name> [start]")
		return
	}
	bound := r.get(args[1])
	if bound == nil {
		return
	}

	var w *tree.Walker[string]
	switch args[0] {
	case "preorder":
		w = tree.WalkPreorder(bound)
	case "postorder":
		w = tree.WalkPostorder(bound)
	case "leaves":
		w = tree.WalkLeaves(bound)
	case "parents":
		if len(args) != 3 {
			fmt.Println("Usage: walk parents <bound> <start>")
			return
		}
		start := r.get(args[2])
		if start == nil {
			return
		}
		w = tree.WalkParents(bound, start)
	default:
		fmt.Printf("Unknown walk kind: %s\n", args[0])
		return
	}

	var out []string
	for w.HasNext() {
		out = append(out, w.Next().Payload())
	}
	fmt.Println(strings.Join(out, " "))
}

func (r *REPL) cmdInfo(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: info <name>")
		return
	}
	n := r.get(args[0])
	if n == nil {
		return
	}
	root := n.AbsRoot()
	fmt.Printf("height=%d degree=%d pos=%d depth=%d root=%s\n",
		n.Height(), n.OutDegree(), n.Pos(), n.Depth(root), root.Payload())
}
