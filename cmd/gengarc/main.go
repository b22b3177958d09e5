package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gengar/pkg/compiler"
	"gengar/pkg/utils"
)

// demoSource is compiled when no input file is given, mirroring the demo
// program shipped with the language.
const demoSource = `main() {
  const msg: string = "hello gengar";
  print(msg);
}
`

const demoName = "hello.gengar"

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return buildCommand(nil)
	}
	switch args[1] {
	case "build":
		return buildCommand(args[2:])
	case "tokens":
		return tokensCommand(args[2:])
	case "ast":
		return astCommand(args[2:])
	case "play":
		return playCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		if strings.HasSuffix(args[1], ".gengar") {
			return buildCommand(args[1:])
		}
		printUsage()
		return fmt.Errorf("gengarc: unknown command %q", args[1])
	}
}

func printUsage() {
	fmt.Println(`usage: gengarc <command> [arguments]

commands:
  build [-left-assoc] [file.gengar]   compile to file.js + file.js.map
  tokens <file.gengar>                dump the token stream
  ast <file.gengar>                   dump the parsed AST
  play                                interactive playground
  help                                show this message

With no arguments, build compiles an embedded demo program to hello.js.`)
}

// readSource loads the named file, or falls back to the embedded demo
// program when no file is given.
func readSource(args []string) (src, path string, err error) {
	if len(args) == 0 {
		return demoSource, demoName, nil
	}
	fullPath, _, err := utils.ResolveSource(args[0])
	if err != nil {
		return "", "", fmt.Errorf("resolve error: %w", err)
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", "", fmt.Errorf("read error: %w", err)
	}
	return string(data), args[0], nil
}

func buildCommand(args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	leftAssoc := fs.Bool("left-assoc", false, "fold binary operator chains left-associatively")
	if err := fs.Parse(args); err != nil {
		return err
	}

	src, srcPath, err := readSource(fs.Args())
	if err != nil {
		return err
	}

	out, err := compiler.Compile(src, srcPath, compiler.Options{LeftAssociative: *leftAssoc})
	if err != nil {
		return err
	}

	jsName := compiler.OutputName(srcPath)
	jsPath := filepath.Join(filepath.Dir(srcPath), jsName)
	mapPath := jsPath + ".map"

	code := out.Code + "\n//# sourceMappingURL=" + jsName + ".map"
	if err := os.WriteFile(jsPath, []byte(code), 0o644); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	if err := os.WriteFile(mapPath, out.SourceMap, 0o644); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	fmt.Printf("wrote %s and %s\n", jsPath, mapPath)
	return nil
}

func tokensCommand(args []string) error {
	src, _, err := readSource(args)
	if err != nil {
		return err
	}

	lex := compiler.NewLexer(src)
	for {
		tok, err := lex.GetToken()
		if err != nil {
			return err
		}
		fmt.Println(" ", tok)
		if tok.Kind == compiler.EOF {
			return nil
		}
	}
}

func astCommand(args []string) error {
	src, srcPath, err := readSource(args)
	if err != nil {
		return err
	}

	prog, err := compiler.Parse(src, srcPath, compiler.Options{})
	if err != nil {
		return err
	}

	fmt.Println(prog)
	for _, stmt := range prog.Body {
		fmt.Println(" ", stmt)
	}
	return nil
}
