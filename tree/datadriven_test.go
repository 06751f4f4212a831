package tree

import (
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// TestDataDriven runs the scenario files under testdata. Each file builds
// trees through named nodes and checks traversals, dumps, and cache
// values after every edit. Commands:
//
//	new <name>                  create a detached root
//	add <parent> <name>         append a child
//	insert <parent> <name> <i>  insert a child at index i
//	set <parent> <name> <i>     place a child at index i
//	attach <parent> <name>      attach an existing subtree
//	detach <name>               detach a subtree
//	dump <name>                 render a subtree
//	walk <kind> <bound> [start] run a traversal; kind is one of
//	                            preorder, postorder, leaves,
//	                            leaves-back, parents
//	height|depth|level ...      cache queries
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		nodes := make(map[string]*Node[string])
		datadriven.RunTest(t, path, func(t *testing.T, td *datadriven.TestData) string {
			arg := func(i int) string {
				if i >= len(td.CmdArgs) {
					td.Fatalf(t, "%s: missing argument %d", td.Cmd, i)
				}
				return td.CmdArgs[i].Key
			}
			get := func(i int) *Node[string] {
				n, ok := nodes[arg(i)]
				if !ok {
					td.Fatalf(t, "%s: unknown node %q", td.Cmd, arg(i))
				}
				return n
			}
			intArg := func(i int) int {
				v, err := strconv.Atoi(arg(i))
				if err != nil {
					td.Fatalf(t, "%s: bad index %q", td.Cmd, arg(i))
				}
				return v
			}
			result := func(err error) string {
				if err != nil {
					return err.Error()
				}
				return "ok"
			}

			switch td.Cmd {
			case "new":
				nodes[arg(0)] = New(arg(0))
				return "ok"

			case "add":
				nodes[arg(1)] = get(0).AddChild(arg(1))
				return "ok"

			case "insert":
				c, err := get(0).InsertChild(arg(1), intArg(2))
				if err == nil {
					nodes[arg(1)] = c
				}
				return result(err)

			case "set":
				c, err := get(0).SetChild(arg(1), intArg(2))
				if err == nil {
					nodes[arg(1)] = c
				}
				return result(err)

			case "attach":
				return result(get(0).AddSubtree(get(1)))

			case "detach":
				get(0).Detach()
				return "ok"

			case "dump":
				return get(0).Dump()

			case "walk":
				var w *Walker[string]
				switch kind := arg(0); kind {
				case "preorder":
					w = WalkPreorder(get(1))
				case "postorder":
					w = WalkPostorder(get(1))
				case "leaves":
					w = WalkLeaves(get(1))
				case "leaves-back":
					w = WalkLeavesBackward(get(1))
				case "parents":
					w = WalkParents(get(1), get(2))
				default:
					td.Fatalf(t, "unknown walk kind %q", kind)
				}
				var out []string
				if arg(0) == "leaves-back" {
					for w.HasPrev() {
						out = append(out, w.Prev().Payload())
					}
				} else {
					for w.HasNext() {
						out = append(out, w.Next().Payload())
					}
				}
				return strings.Join(out, " ")

			case "height":
				return strconv.Itoa(get(0).Height())

			case "depth":
				return strconv.Itoa(get(1).Depth(get(0)))

			case "level":
				return strconv.Itoa(get(1).Level(get(0)))

			default:
				td.Fatalf(t, "unknown command %q", td.Cmd)
				return ""
			}
		})
	})
}
