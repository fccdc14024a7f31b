package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/indicnorm"
	"github.com/npillmayer/indicnorm/numerals"
	"github.com/npillmayer/indicnorm/script"
	"github.com/npillmayer/indicnorm/segment"
	"github.com/pterm/pterm"
)

// ExpandCmd prints "n: words" for every n in [From, To].
type ExpandCmd struct {
	From int64 `default:"1" help:"First number"`
	To   int64 `default:"100" help:"Last number"`
}

func (c *ExpandCmd) Run(g *Globals) error {
	if c.To < c.From {
		return fmt.Errorf("empty range %d…%d", c.From, c.To)
	}
	lang, err := g.language()
	if err != nil {
		return err
	}
	e := g.registry().Expander(lang)
	tracer().Infof("expanding with %s", e.Grammar().Identifier)
	for n := c.From; ; n++ {
		fmt.Printf("%d: %s\n", n, e.Expand(n))
		if n == c.To {
			break
		}
	}
	return nil
}

// NumbersCmd expands numerals in text.
type NumbersCmd struct {
	File   string `arg:"" optional:"" help:"Input file, stdin if omitted"`
	Retain bool   `xor:"mode" help:"Keep numerals as {numeral}{expansion} for review"`
	Strip  bool   `xor:"mode" help:"Revert reviewed text to the original numerals"`
	Keep   bool   `xor:"mode" help:"Resolve reviewed text to the expansions"`
}

func (c *NumbersCmd) Run(g *Globals) error {
	text, err := readInput(c.File)
	if err != nil {
		return err
	}
	switch {
	case c.Strip:
		fmt.Print(numerals.RemoveNumeralsAndBrackets(text))
		return nil
	case c.Keep:
		fmt.Print(numerals.KeepExpansions(text))
		return nil
	}
	lang, err := g.language()
	if err != nil {
		return err
	}
	fmt.Print(g.registry().ExpandNumbers(text, lang, c.Retain))
	return nil
}

// VowelsCmd merges vowel signs.
type VowelsCmd struct {
	File   string `arg:"" optional:"" help:"Input file, stdin if omitted"`
	Script string `short:"s" help:"Script name or ISO 15924 code, default is the script of --lang"`
}

func (c *VowelsCmd) Run(g *Globals) error {
	s, err := c.script(g)
	if err != nil {
		return err
	}
	text, err := readInput(c.File)
	if err != nil {
		return err
	}
	fmt.Print(indicnorm.MergeVowelSigns(text, s))
	return nil
}

func (c *VowelsCmd) script(g *Globals) (script.Script, error) {
	if c.Script != "" {
		s, ok := script.ScriptByName(c.Script)
		if !ok {
			return script.Script{}, fmt.Errorf("unknown script: %q", c.Script)
		}
		return s, nil
	}
	lang, err := g.language()
	if err != nil {
		return script.Script{}, err
	}
	return lang.Script, nil
}

// SplitCmd prints one sentence per line, paragraphs separated by a blank line.
type SplitCmd struct {
	File  string `arg:"" optional:"" help:"Input file, stdin if omitted"`
	Max   int    `default:"250" help:"Maximum sentence length in code points"`
	Group int    `help:"Join consecutive sentences up to this length"`
}

func (c *SplitCmd) Run(g *Globals) error {
	if c.Max < 1 {
		return errors.New("maximum sentence length must be positive")
	}
	lang, err := g.language()
	if err != nil {
		return err
	}
	text, err := readInput(c.File)
	if err != nil {
		return err
	}
	paragraphs := g.registry().Segment(text, lang, c.Max)
	for i, p := range paragraphs {
		if i > 0 {
			fmt.Println()
		}
		sentences := []string(p)
		if c.Group > 0 {
			sentences = segment.Group(sentences, c.Group)
		}
		fmt.Println(strings.Join(sentences, "\n"))
	}
	return nil
}

// TablesCmd lists the rule tables of the registry.
type TablesCmd struct{}

func (c *TablesCmd) Run(g *Globals) error {
	return printTables(g.registry())
}

func printTables(r *indicnorm.Registry) error {
	tables, err := indicnorm.ListTables(r.Resources())
	if err != nil {
		return err
	}
	data := [][]string{
		{"Table", "Bytes", "BLAKE3"},
	}
	for _, t := range tables {
		data = append(data, []string{t.Name, fmt.Sprintf("%d", t.Size), t.Digest})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}
