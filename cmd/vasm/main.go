package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/torvik/vr32/assembler"
	"github.com/torvik/vr32/cpu"
)

var rootCmd = &cobra.Command{
	Use:   "vasm [flags] source.s",
	Short: "Assemble vr32 source into machine code.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
		hex, _ := cmd.Flags().GetBool("hex")
		output, _ := cmd.Flags().GetString("output")
		//
		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		asm := assembler.New()
		words, err := asm.Assemble(string(data))
		if err != nil {
			// The error already lists every problem in the file.
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		res := asm.Result()
		log.Debugf("assembled %d instructions, %d labels", len(res.Instructions), len(res.SymbolTable))
		//
		if hex {
			for _, w := range words {
				fmt.Printf("%08x\n", w)
			}
			return
		}
		if err := os.WriteFile(output, cpu.WordsToBytes(words), 0o644); err != nil {
			log.Fatal(err)
		}
		log.Debugf("wrote %d bytes to %s", len(words)*4, output)
	},
}

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().Bool("hex", false, "print hex words to stdout instead of writing binary")
	rootCmd.Flags().StringP("output", "o", "a.bin", "specify output file.")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
