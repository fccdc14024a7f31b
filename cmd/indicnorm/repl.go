package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/indicnorm"
	"github.com/npillmayer/indicnorm/script"
	"github.com/pterm/pterm"
)

// ReplCmd starts interactive mode.
type ReplCmd struct{}

func (c *ReplCmd) Run(g *Globals) error {
	lang, err := g.language()
	if err != nil {
		return err
	}
	repl, err := readline.New(prompt(lang))
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{repl: repl, registry: g.registry(), lang: lang}
	pterm.Info.Println("Welcome to indicnorm")
	pterm.Info.Println("Quit with <ctrl>D, type 'help' for a list of commands")
	intp.REPL()
	return nil
}

func prompt(lang script.Language) string {
	return lang.Code3 + " > "
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	registry *indicnorm.Registry
	lang     script.Language
}

// REPL reads commands until EOF or 'quit'. A line not starting with a
// command is segmented.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		name, arg, _ := strings.Cut(line, " ")
		op, ok := commandFn[strings.ToLower(name)]
		if !ok {
			op, arg = splitOp, line
		}
		quit, err := op(intp, strings.TrimSpace(arg))
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type opFn func(intp *Intp, arg string) (bool, error)

var commandFn = map[string]opFn{
	"quit":    quitOp,
	"help":    helpOp,
	"lang":    langOp,
	"expand":  expandOp,
	"numbers": numbersOp,
	"vowels":  vowelsOp,
	"split":   splitOp,
	"abbrev":  abbrevOp,
	"tables":  tablesOp,
}

func quitOp(intp *Intp, arg string) (bool, error) {
	return true, nil
}

func helpOp(intp *Intp, arg string) (bool, error) {
	pterm.Println(`
	lang <name>        switch language (name, ISO 639 code or BCP 47 tag)
	expand <n>         spoken form of a number
	numbers <text>     expand numerals, keeping them for review
	vowels <text>      merge multi-part vowel signs
	split <text>       normalize and split into sentences (default for plain lines)
	abbrev <prefix>    initials and acronyms starting with prefix
	tables             list rule tables
	quit               leave
	`)
	return false, nil
}

func langOp(intp *Intp, arg string) (bool, error) {
	if arg == "" {
		pterm.Printf("%s (%s), script %s\n", intp.lang, intp.lang.Tag(), intp.lang.Script)
		return false, nil
	}
	lang, ok := script.MatchLanguage(arg)
	if !ok {
		return false, fmt.Errorf("unknown language: %q", arg)
	}
	intp.lang = lang
	intp.repl.SetPrompt(prompt(lang))
	tracer().Infof("language is %s", lang)
	return false, nil
}

func expandOp(intp *Intp, arg string) (bool, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return false, fmt.Errorf("not a number: %q", arg)
	}
	pterm.Println(intp.registry.Expand(n, intp.lang))
	return false, nil
}

func numbersOp(intp *Intp, arg string) (bool, error) {
	pterm.Println(intp.registry.ExpandNumbers(arg, intp.lang, true))
	return false, nil
}

func vowelsOp(intp *Intp, arg string) (bool, error) {
	merged := indicnorm.MergeVowelSigns(arg, intp.lang.Script)
	pterm.Println(merged)
	pterm.Printf("%d → %d code points\n", len([]rune(arg)), len([]rune(merged)))
	return false, nil
}

func splitOp(intp *Intp, arg string) (bool, error) {
	for _, p := range intp.registry.Segment(arg, intp.lang, 0) {
		for i, sentence := range p {
			pterm.Printf("%3d  %s\n", i+1, sentence)
		}
	}
	return false, nil
}

func abbrevOp(intp *Intp, arg string) (bool, error) {
	set := intp.registry.Initials(intp.lang.Script)
	words := set.WithPrefix(arg)
	if len(words) == 0 {
		pterm.Printf("no entries in %s\n", set.Identifier)
		return false, nil
	}
	data := [][]string{
		{"Word", "Synonyms"},
	}
	for _, w := range words {
		data = append(data, []string{w, strings.Join(set.Synonyms(w), " ")})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return false, nil
}

func tablesOp(intp *Intp, arg string) (bool, error) {
	return false, printTables(intp.registry)
}
