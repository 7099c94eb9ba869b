/*
Command ropewalk replays a sequence of rope operations on a text and prints
the text after every step.

Usage:

	ropewalk [flags] [text]

The default walk starts with "Hello, world!", inserts " cruel" at position 3,
deletes the characters [5…11), reads the character at the split position,
splits the text at position 5 and concatenates both halves again.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/rope"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"
)

// walk holds the parameters of a walk through the rope operations.
type walk struct {
	text       string
	insertAt   uint64
	insert     string
	deleteFrom uint64
	deleteTo   uint64
	splitAt    uint64
	showTree   bool
	dotFile    string
}

var (
	stepColor  = color.New(color.FgBlue, color.Bold)
	textColor  = color.New(color.FgGreen)
	errorColor = color.New(color.FgRed)
)

func main() {
	w := walk{}
	flag.Uint64Var(&w.insertAt, "insert-at", 3, "position to insert text at")
	flag.StringVar(&w.insert, "insert", " cruel", "text to insert")
	flag.Uint64Var(&w.deleteFrom, "delete-from", 5, "start position of deletion")
	flag.Uint64Var(&w.deleteTo, "delete-to", 11, "end position of deletion (exclusive)")
	flag.Uint64Var(&w.splitAt, "split-at", 5, "position to split the text at")
	flag.BoolVar(&w.showTree, "tree", false, "print the tree structure after every step")
	flag.StringVar(&w.dotFile, "dot", "", "write the final rope in Graphviz DOT format to file")
	level := flag.String("trace", "error", "trace level [debug|info|error]")
	flag.Parse()
	w.text = "Hello, world!"
	if flag.NArg() > 0 {
		w.text = strings.Join(flag.Args(), " ")
	}
	//
	setupTracing(*level)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	if err := w.run(); err != nil {
		errorColor.Fprintf(os.Stderr, "ropewalk: %v\n", err)
		os.Exit(1)
	}
}

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	l := tracing.LevelError
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	}
	gtrace.CoreTracer.SetTraceLevel(l)
	tracing.Select("rope").SetTraceLevel(l)
}

func (w walk) run() error {
	r := rope.New(w.text)
	w.step("new", r)
	r, err := rope.Insert(r, w.insertAt, w.insert)
	if err != nil {
		return fmt.Errorf("insert at %d: %w", w.insertAt, err)
	}
	w.step(fmt.Sprintf("insert(%d, %q)", w.insertAt, w.insert), r)
	if r, err = rope.Delete(r, w.deleteFrom, w.deleteTo); err != nil {
		return fmt.Errorf("delete [%d…%d): %w", w.deleteFrom, w.deleteTo, err)
	}
	w.step(fmt.Sprintf("delete(%d, %d)", w.deleteFrom, w.deleteTo), r)
	ch, err := r.CharAt(w.splitAt)
	if err != nil {
		return fmt.Errorf("char at %d: %w", w.splitAt, err)
	}
	stepColor.Printf("%-24s", fmt.Sprintf("charAt(%d)", w.splitAt))
	textColor.Printf("%q\n", ch)
	left, right, err := rope.Split(r, w.splitAt)
	if err != nil {
		return fmt.Errorf("split at %d: %w", w.splitAt, err)
	}
	w.step(fmt.Sprintf("split(%d) left", w.splitAt), left)
	w.step(fmt.Sprintf("split(%d) right", w.splitAt), right)
	r = rope.Concat(left, right)
	w.step("concat", r)
	w.step("balance", rope.Balance(r))
	if w.dotFile != "" {
		return writeDot(w.dotFile, r)
	}
	return nil
}

func (w walk) step(name string, r rope.Rope) {
	stepColor.Printf("%-24s", name)
	textColor.Printf("%q\n", r.String())
	if w.showTree {
		fmt.Println(r.Sketch())
	}
}

func writeDot(name string, r rope.Rope) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return rope.Rope2Dot(r, f)
}
