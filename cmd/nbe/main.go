package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/smasher164/nbe/simply"
	"github.com/smasher164/nbe/tartlet"
	"github.com/smasher164/nbe/untyped"
)

var (
	verbose = flag.Bool("v", false, "trace type checking to stderr")
	list    = flag.Bool("list", false, "list the examples")
	dump    = flag.Bool("dump", false, "print the normal form's syntax tree")
	name    = flag.String("example", "", "run the named example")
)

func usage() {
	fmt.Fprint(os.Stderr, "usage: nbe [ -v ] [ -dump ] ( -list | -example name )\n\n")
	fmt.Fprint(os.Stderr, "nbe normalizes and type checks example programs in the untyped, simply typed and dependently typed lambda calculus.\n")
	os.Exit(2)
}

func errExit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

type example struct {
	Name string
	Desc string
	Run  func() (fmt.Stringer, error)
}

func untypedExample(body untyped.Expr) func() (fmt.Stringer, error) {
	return func() (fmt.Stringer, error) {
		return untyped.Program{Defs: untyped.ChurchDefs, Body: body}.Run()
	}
}

func simplyExample(body simply.Expr) func() (fmt.Stringer, error) {
	return func() (fmt.Stringer, error) {
		return simply.Program{Defs: simply.Arithmetic, Body: body}.Run()
	}
}

func tartletExample(body tartlet.Expr) func() (fmt.Stringer, error) {
	return func() (fmt.Stringer, error) {
		return tartlet.Program{Defs: tartlet.Consequences, Body: body}.Run()
	}
}

var examples = []example{
	{
		Name: "church",
		Desc: "Church numeral 2 + 3",
		Run: untypedExample(untyped.App{
			Rator: untyped.App{Rator: untyped.Var("+"), Rand: untyped.ToChurch(2)},
			Rand:  untyped.ToChurch(3),
		}),
	},
	{
		Name: "plus",
		Desc: "+ on Nat, by rec-Nat",
		Run:  simplyExample(simply.Var("+")),
	},
	{
		Name: "plus-three",
		Desc: "+ partially applied to three",
		Run:  simplyExample(simply.App{Rator: simply.Var("+"), Rand: simply.Var("three")}),
	},
	{
		Name: "five",
		Desc: "three + two",
		Run: simplyExample(simply.App{
			Rator: simply.App{Rator: simply.Var("+"), Rand: simply.Var("three")},
			Rand:  simply.Var("two"),
		}),
	},
	{
		Name: "refl",
		Desc: "nat=consequence-refl applied to two",
		Run:  tartletExample(tartlet.App{Rator: tartlet.Var("nat=consequence-refl"), Rand: tartlet.Var("two")}),
	},
	{
		Name: "zero-one",
		Desc: "consequences of zero being one",
		Run: tartletExample(tartlet.App{
			Rator: tartlet.App{Rator: tartlet.Var("there-are-consequences"), Rand: tartlet.Zero{}},
			Rand:  tartlet.Add1{Pred: tartlet.Zero{}},
		}),
	},
	{
		Name: "three-two",
		Desc: "consequences of three being two",
		Run: tartletExample(tartlet.App{
			Rator: tartlet.App{Rator: tartlet.Var("there-are-consequences"), Rand: tartlet.Var("three")},
			Rand:  tartlet.Var("two"),
		}),
	},
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		usage()
	}
	if *list {
		for _, ex := range examples {
			fmt.Printf("%-14s %s\n", ex.Name, ex.Desc)
		}
		return
	}
	i := slices.IndexFunc(examples, func(ex example) bool { return ex.Name == *name })
	if i < 0 {
		if *name != "" {
			names := lo.Map(examples, func(ex example, _ int) string { return ex.Name })
			errExit(fmt.Errorf("unknown example %q, want one of %v", *name, names))
		}
		usage()
	}
	if *verbose {
		tartlet.SetDebugOutput(os.Stderr)
	}
	res, err := examples[i].Run()
	if err != nil {
		errExit(err)
	}
	if *dump {
		pretty.Println(res)
		return
	}
	fmt.Println(res)
}
