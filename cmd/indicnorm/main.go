/*
Command indicnorm normalizes Indic text from the command line.

	indicnorm --lang Kannada split article.txt
	indicnorm --lang hi expand --from 1 --to 100
	indicnorm --lang kn numbers --retain < corpus.txt
	indicnorm --rules ./tables tables
	indicnorm --lang Hindi repl

Rule tables are embedded; --rules selects a directory with the same layout
(numerals/, initials/, abbreviations/) instead.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/indicnorm"
	"github.com/npillmayer/indicnorm/script"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'indicnorm'
func tracer() tracing.Trace {
	return tracing.Select("indicnorm")
}

// Globals are flags shared by all commands.
type Globals struct {
	Lang  string `short:"l" default:"Hindi" help:"Language by name, ISO 639 code or BCP 47 tag"`
	Trace string `default:"Error" enum:"Debug,Info,Error" help:"Trace level [Debug|Info|Error]"`
	Rules string `type:"existingdir" help:"Directory of rule tables to use instead of the embedded ones"`
}

// CLI is the command tree.
var CLI struct {
	Globals

	Expand  ExpandCmd  `cmd:"" help:"Print the spoken form of a range of numbers"`
	Numbers NumbersCmd `cmd:"" help:"Expand numerals in running text"`
	Vowels  VowelsCmd  `cmd:"" help:"Merge multi-part vowel signs"`
	Split   SplitCmd   `cmd:"" help:"Normalize text and split it into sentences"`
	Tables  TablesCmd  `cmd:"" help:"List rule tables with their digests"`
	Repl    ReplCmd    `cmd:"" help:"Interactive mode"`
}

func main() {
	initDisplay()
	ctx := kong.Parse(&CLI,
		kong.Name("indicnorm"),
		kong.Description("Normalization and sentence segmentation for Indic text"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err := initTracing(CLI.Trace); err != nil {
		fmt.Fprintf(os.Stderr, "error configuring tracing: %v\n", err)
		os.Exit(1)
	}
	err := ctx.Run(&CLI.Globals)
	ctx.FatalIfErrorf(err)
}

// set up logging
func initTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.indicnorm": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	default:
		tracer().SetTraceLevel(tracing.LevelError)
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// registry creates the registry selected by the global flags.
func (g *Globals) registry() *indicnorm.Registry {
	if g.Rules == "" {
		return indicnorm.New()
	}
	tracer().Infof("loading rule tables from %s", g.Rules)
	return indicnorm.New(indicnorm.WithResources(os.DirFS(g.Rules)))
}

func (g *Globals) language() (script.Language, error) {
	lang, ok := script.MatchLanguage(g.Lang)
	if !ok {
		return script.Language{}, fmt.Errorf("unknown language: %q", g.Lang)
	}
	return lang, nil
}

// readInput reads a file, or stdin if path is empty or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return string(b), nil
}
