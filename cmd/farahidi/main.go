/*
farahidi is a console utility translating a grammar specification to a Go
source file or a JSON file containing the parsed grammar tables. Usage is

	farahidi ([-j] | [-p <name>] [-v <name>]) [-o <name>] [-d] <file>

-j instructs farahidi to output a JSON file instead of Go source;

-o <name> defines the output file name, default is the name of the input file
with .go or .json suffix;

-p <name> defines the Go package name, default is the directory name of the
output file;

-v <name> defines the generated Go variable name of type *grammar.Grammar,
default is the name of the first non-terminal;

-d dumps the parsed definitions to stdout instead of generating a file;

<file> defines a grammar specification file parsable by specdef.Parse().
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	farahidi "github.com/KareemErgawy/al-farahidi"
	"github.com/KareemErgawy/al-farahidi/grammar"
	"github.com/KareemErgawy/al-farahidi/source"
	"github.com/KareemErgawy/al-farahidi/specdef"
)

var (
	generateJson                      bool
	dumpTables                        bool
	outFileName, packageName, varName string

	warningStyle = color.New(color.FgHiYellow, color.Bold)
	nameStyle    = color.New(color.FgCyan, color.Bold)

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "farahidi [flags] <file>",
	Short: "translate a grammar specification to Go source or JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return run(args[0])
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&generateJson, "json", "j", false, "output JSON instead of Go")
	rootCmd.Flags().BoolVarP(&dumpTables, "dump", "d", false, "dump parsed definitions to stdout, generate nothing")
	rootCmd.Flags().StringVarP(&outFileName, "out", "o", "", "output file name, default is the input file name with .go or .json suffix")
	rootCmd.Flags().StringVarP(&packageName, "package", "p", "", "Go package name, default is the dir name of the output file")
	rootCmd.Flags().StringVarP(&varName, "var", "v", "", "Go variable name, default is the first non-terminal name")
}

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(inFileName string) error {
	src, err := os.ReadFile(inFileName)
	if err != nil {
		logger.Error("cannot read specification", zap.Error(err))
		return err
	}

	parser := specdef.New(specdef.DefaultLimits())
	parser.OnWarning(func(w *farahidi.Error) {
		warningStyle.Fprintf(os.Stderr, "warning: %s\n", w.Message)
	})

	gr, err := parser.Parse(source.New(inFileName, src))
	if err != nil {
		logger.Error("cannot parse specification", zap.Error(err))
		return err
	}

	if dumpTables {
		dump(gr)
		return nil
	}

	if outFileName == "" {
		ext := filepath.Ext(inFileName)
		outFileName = inFileName[:len(inFileName)-len(ext)]
		if generateJson {
			outFileName += ".json"
		} else {
			outFileName += ".go"
		}
	}

	var content []byte
	if generateJson {
		content, err = makeJson(gr)
	} else {
		content, err = makeGo(gr)
	}
	if err == nil {
		err = os.WriteFile(outFileName, content, 0o666)
	}
	if err != nil {
		logger.Error("cannot generate output", zap.Error(err))
		return err
	}

	return nil
}

func dump(gr *grammar.Grammar) {
	for _, nt := range gr.Nonterms {
		nameStyle.Printf("$%s", nt.Name)
		if nt.Complete {
			fmt.Printf(" := %s\n", gr.ExprString(nt.Body))
		} else {
			fmt.Println(" := ?")
		}
	}
}
