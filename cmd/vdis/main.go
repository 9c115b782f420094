package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/torvik/vr32/cpu"
	"github.com/torvik/vr32/disassembler"
)

var rootCmd = &cobra.Command{
	Use:   "vdis [flags] binary",
	Short: "Disassemble vr32 machine code.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		words := cpu.BytesToWords(data)
		log.Debugf("decoding %d instruction words", len(words))
		src, err := disassembler.Disassemble(words)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Print(src)
	},
}

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
