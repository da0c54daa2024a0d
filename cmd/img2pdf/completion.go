package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	img2pdf "github.com/alnah/go-img2pdf"
	"github.com/alnah/go-img2pdf/internal/imagefx"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagFloat
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma-separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed argument values (completion shells, help topics)
	TakesFiles  bool     // accepts file arguments
	TakesDir    bool     // accepts a directory argument
	FilePattern string   // glob for file arguments, comma-separated
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta returns completion metadata keyed by flag name.
func flagCompletionMeta() map[string]completionMeta {
	return map[string]completionMeta{
		// Enum flags
		"page-size":         {Values: img2pdf.PageSizeNames()},
		"orientation":       {Values: []string{img2pdf.OrientationPortrait, img2pdf.OrientationLandscape}},
		"scale":             {Values: []string{"fit", "fill", "none"}},
		"align":             {Values: []string{"left", "center", "right"}},
		"valign":            {Values: []string{"top", "center", "bottom"}},
		"number-format":     {Values: []string{"1", "a", "A", "i", "I"}},
		"number-vertical":   {Values: []string{"top", "bottom"}},
		"number-horizontal": {Values: []string{"left", "center", "right"}},
		"filter":            {Values: imagefx.Names()},

		// File flags with glob patterns
		"config": {FileGlob: "*.yaml,*.yml"},
		"output": {FileGlob: "*.pdf"},

		// Directory flags
		"output-dir": {IsDir: true},
	}
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	meta := flagCompletionMeta()
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		// Determine base type from pflag type
		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		case "float32", "float64":
			fd.Type = flagFloat
		default:
			fd.Type = flagString
		}

		// Override type based on completion metadata
		if m, ok := meta[f.Name]; ok {
			if len(m.Values) > 0 {
				fd.Type = flagEnum
				fd.Values = m.Values
			} else if m.FileGlob != "" {
				fd.Type = flagFile
				fd.FileGlob = m.FileGlob
			} else if m.IsDir {
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "convert",
			Desc:        "Convert a directory or a list of images to one PDF",
			Flags:       extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{})),
			TakesFiles:  true,
			FilePattern: "*.jpg,*.jpeg,*.png,*.JPG,*.JPEG,*.PNG",
		},
		{
			Name:     "batch",
			Desc:     "Convert each image subdirectory of a root to its own PDF",
			Flags:    extractFlagsFromFlagSet(newBatchFlagSet(&batchFlags{})),
			TakesDir: true,
		},
		{Name: "sizes", Desc: "List named page sizes"},
		{Name: "config", Desc: "Print a config file holding every default"},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish)},
		},
		{Name: "version", Desc: "Show version information"},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: []string{"convert", "batch", "sizes", "config", "completion", "version"},
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var buf bytes.Buffer
	commands := getCommands()

	switch shell {
	case ShellBash:
		generateBash(&buf, commands)
	case ShellZsh:
		generateZsh(&buf, commands)
	case ShellFish:
		generateFish(&buf, commands)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func commandNames(commands []commandDef) string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// flagWords lists every spelling of a command's flags.
func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// flagPattern returns a bash case pattern matching the flag spellings.
func flagPattern(f flagDef) string {
	if f.Short != "" {
		return "--" + f.Long + "|-" + f.Short
	}
	return "--" + f.Long
}

func generateBash(w io.Writer, commands []commandDef) {
	fmt.Fprintln(w, "# bash completion for img2pdf")
	fmt.Fprintln(w, "_img2pdf() {")
	fmt.Fprintln(w, "    local cur prev cmd")
	fmt.Fprintln(w, "    cur=\"${COMP_WORDS[COMP_CWORD]}\"")
	fmt.Fprintln(w, "    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"")
	fmt.Fprintln(w, "    cmd=\"${COMP_WORDS[1]}\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if [[ $COMP_CWORD -eq 1 ]]; then")
	fmt.Fprintf(w, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", commandNames(commands))
	fmt.Fprintln(w, "        return")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    case \"$cmd\" in")

	for _, c := range commands {
		fmt.Fprintf(w, "    %s)\n", c.Name)

		if len(c.Flags) > 0 {
			fmt.Fprintln(w, "        case \"$prev\" in")
			var valueFlags []string
			for _, f := range c.Flags {
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(w, "        %s) COMPREPLY=($(compgen -W %q -- \"$cur\")); return ;;\n", flagPattern(f), strings.Join(f.Values, " "))
				case flagFile:
					fmt.Fprintf(w, "        %s) COMPREPLY=($(compgen -f -- \"$cur\")); return ;;\n", flagPattern(f))
				case flagDir:
					fmt.Fprintf(w, "        %s) COMPREPLY=($(compgen -d -- \"$cur\")); return ;;\n", flagPattern(f))
				case flagBool:
				default:
					valueFlags = append(valueFlags, flagPattern(f))
				}
			}
			if len(valueFlags) > 0 {
				fmt.Fprintf(w, "        %s) return ;;\n", strings.Join(valueFlags, "|"))
			}
			fmt.Fprintln(w, "        esac")
			fmt.Fprintln(w, "        if [[ $cur == -* ]]; then")
			fmt.Fprintf(w, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(flagWords(c.Flags), " "))
			fmt.Fprintln(w, "            return")
			fmt.Fprintln(w, "        fi")
		}

		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(w, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(c.Args, " "))
		case c.TakesFiles:
			fmt.Fprintln(w, "        COMPREPLY=($(compgen -f -- \"$cur\"))")
		case c.TakesDir:
			fmt.Fprintln(w, "        COMPREPLY=($(compgen -d -- \"$cur\"))")
		}
		fmt.Fprintln(w, "        ;;")
	}

	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w, "complete -o filenames -F _img2pdf img2pdf")
}

// zshEscape escapes text for a single-quoted _arguments spec.
func zshEscape(s string) string {
	r := strings.NewReplacer("'", `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)
	return r.Replace(s)
}

// zshSpec returns the _arguments spec for one flag.
func zshSpec(f flagDef) string {
	var action string
	switch f.Type {
	case flagBool:
	case flagEnum:
		action = ":value:(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":file:_files -g \"" + strings.ReplaceAll(f.FileGlob, ",", " ") + "\""
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":value: "
	}

	desc := "[" + zshEscape(f.Desc) + "]"
	if f.Short == "" {
		return "'--" + f.Long + desc + action + "'"
	}
	return "'(-" + f.Short + " --" + f.Long + ")'{-" + f.Short + ",--" + f.Long + "}'" + desc + action + "'"
}

func generateZsh(w io.Writer, commands []commandDef) {
	fmt.Fprintln(w, "#compdef img2pdf")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "_img2pdf() {")
	fmt.Fprintln(w, "    local -a commands")
	fmt.Fprintln(w, "    commands=(")
	for _, c := range commands {
		fmt.Fprintf(w, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	fmt.Fprintln(w, "    )")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    if (( CURRENT == 2 )); then")
	fmt.Fprintln(w, "        _describe 'command' commands")
	fmt.Fprintln(w, "        return")
	fmt.Fprintln(w, "    fi")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "    case $words[2] in")

	for _, c := range commands {
		fmt.Fprintf(w, "    %s)\n", c.Name)
		if len(c.Flags) == 0 && len(c.Args) == 0 && !c.TakesFiles && !c.TakesDir {
			fmt.Fprintln(w, "        _message 'no more arguments'")
			fmt.Fprintln(w, "        ;;")
			continue
		}
		fmt.Fprintln(w, "        _arguments -s \\")
		for _, f := range c.Flags {
			fmt.Fprintf(w, "            %s \\\n", zshSpec(f))
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(w, "            '1:argument:(%s)'\n", strings.Join(c.Args, " "))
		case c.TakesFiles:
			fmt.Fprintf(w, "            '*:image:_files -g \"%s\"'\n", strings.ReplaceAll(c.FilePattern, ",", " "))
		default:
			fmt.Fprintln(w, "            '1:directory:_files -/'")
		}
		fmt.Fprintln(w, "        ;;")
	}

	fmt.Fprintln(w, "    esac")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "compdef _img2pdf img2pdf")
}

// fishEscape escapes text for a single-quoted fish string.
func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

func generateFish(w io.Writer, commands []commandDef) {
	fmt.Fprintln(w, "# fish completion for img2pdf")
	fmt.Fprintln(w, "complete -c img2pdf -f")
	for _, c := range commands {
		fmt.Fprintf(w, "complete -c img2pdf -n __fish_use_subcommand -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}

	for _, c := range commands {
		cond := fmt.Sprintf("'__fish_seen_subcommand_from %s'", c.Name)
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c img2pdf -n %s -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -d '" + fishEscape(f.Desc) + "'"
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += " -xa '" + strings.Join(f.Values, " ") + "'"
			case flagFile:
				line += " -rF"
			case flagDir:
				line += " -xa '(__fish_complete_directories)'"
			default:
				line += " -x"
			}
			fmt.Fprintln(w, line)
		}

		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(w, "complete -c img2pdf -n %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		case c.TakesFiles:
			fmt.Fprintf(w, "complete -c img2pdf -n %s -F\n", cond)
		case c.TakesDir:
			fmt.Fprintf(w, "complete -c img2pdf -n %s -xa '(__fish_complete_directories)'\n", cond)
		}
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: img2pdf completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(img2pdf completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(img2pdf completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    img2pdf completion fish > ~/.config/fish/completions/img2pdf.fish")
}
