package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cube4d/hobj"
	"github.com/npillmayer/cube4d/peg"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI, where users may load higher object
// sources and inspect the result.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial commands")
	strict := flag.Bool("strict", false, "Reject re-definition of objects")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to HObjView")
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel))
	//
	repl, err := readline.New("hobj> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:   repl,
		strict: *strict,
	}
	if flag.NArg() > 0 {
		if err := intp.load(flag.Arg(0)); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D")
	intp.loadInitFile(*initf)
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our command interpreter.
type Intp struct {
	repl    *readline.Instance
	strict  bool
	source  string
	text    *peg.RuneSource
	tree    *peg.Node
	objects hobj.Collection
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

var errNoSource = errors.New("no source loaded")

// Eval executes a single command line.
func (intp *Intp) Eval(line string) (bool, error) {
	args := strings.Fields(line)
	cmd, args := args[0], args[1:]
	tracer().Debugf("command %s %v", cmd, args)
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "load":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: load <file>")
		}
		return false, intp.load(args[0])
	case "syntax":
		pterm.Print(hobj.Syntax)
		return false, nil
	}
	if intp.tree == nil {
		return false, errNoSource
	}
	switch cmd {
	case "tree":
		intp.printTree()
	case "objects":
		return false, intp.printObjects()
	case "show", "mesh":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: %s <name>", cmd)
		}
		h, ok := intp.objects[args[0]]
		if !ok {
			return false, fmt.Errorf("no object named %q", args[0])
		}
		if cmd == "mesh" {
			printMesh(hobj.MakeMesh(h))
			return false, nil
		}
		return false, printObject(h)
	case "tokens":
		return false, intp.printTokens()
	default:
		return false, fmt.Errorf("unknown command: %s", cmd)
	}
	return false, nil
}

func (intp *Intp) load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	var tree *peg.Node
	objects, err := hobj.Read(string(data), hobj.RejectDuplicates(intp.strict), hobj.KeepTree(&tree))
	if err != nil {
		var ferr *hobj.FormatError
		if errors.As(err, &ferr) {
			line, col := position([]rune(string(data)), ferr.Offset)
			return fmt.Errorf("%s:%d:%d: %w", filename, line, col, err)
		}
		return err
	}
	intp.source = string(data)
	intp.text = peg.NewRuneSource(intp.source)
	intp.tree = tree
	intp.objects = objects
	pterm.Info.Printf("Loaded %d objects from %s\n", len(objects), filename)
	return nil
}

// position converts a rune offset into 1-based line and column numbers.
// LF, CR and CR LF each count as a single line break.
func position(runes []rune, offset int) (int, int) {
	line, col := 1, 1
	for i := 0; i < offset && i < len(runes); i++ {
		switch runes[i] {
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				continue
			}
			line++
			col = 1
		case '\n':
			line++
			col = 1
		default:
			col++
		}
	}
	return line, col
}

func (intp *Intp) printTree() {
	var ll pterm.LeveledList
	peg.Walk(intp.tree, func(n *peg.Node, depth int) {
		ll = append(ll, pterm.LeveledListItem{
			Level: depth,
			Text:  peg.Label(n, intp.text, hobj.TagString),
		})
	})
	tracer().Debugf("|ll| = %d", len(ll))
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

func (intp *Intp) printObjects() error {
	data := pterm.TableData{{"Name", "Vertices", "Facets", "Fingerprint"}}
	for _, name := range intp.objects.Names() {
		h := intp.objects[name]
		data = append(data, []string{
			name,
			fmt.Sprintf("%d", h.VertexCount()),
			fmt.Sprintf("%d", h.FacetCount()),
			h.Fingerprint(),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printObject(h *hobj.HigherObject) error {
	data := pterm.TableData{{"#", "x", "y", "z", "w"}}
	for i, v := range h.Vertices() {
		data = append(data, []string{fmt.Sprintf("v%d", i),
			fmt.Sprintf("%g", v.X), fmt.Sprintf("%g", v.Y),
			fmt.Sprintf("%g", v.Z), fmt.Sprintf("%g", v.W)})
	}
	for i, f := range h.Facets() {
		data = append(data, []string{fmt.Sprintf("f%d", i),
			fmt.Sprintf("%d", f.A), fmt.Sprintf("%d", f.B), fmt.Sprintf("%d", f.C), ""})
	}
	pterm.Println(h.Name())
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printMesh(m *hobj.Mesh) {
	pterm.Println(m.Name)
	pterm.Printf("positions: %v\n", m.Positions)
	pterm.Printf("w:         %v\n", m.W)
	pterm.Printf("triangles: %v\n", m.Triangles)
}

func (intp *Intp) printTokens() error {
	tokens, err := hobj.Tokens(intp.source)
	for _, tok := range tokens {
		pterm.Printf("%-8s %-10s %q\n", hobj.TokString(tok.TokType()), tok.Span(), tok.Lexeme())
	}
	return err
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
