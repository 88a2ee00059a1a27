package main

import (
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var asmCmd = &cobra.Command{
	Use:   "asm [flags] source",
	Short: "Assemble a na32 source file into a binary program.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source := args[0]

		output := GetString(cmd, "output")
		if len(output) == 0 {
			output = strings.TrimSuffix(source, filepath.Ext(source)) + ".bin"
		}

		emu := newEmulator(cmd)
		err := load(emu, source, true)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}

		err = os.WriteFile(output, emu.Bytes(), 0o644)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}

		log.Debugf("%v: %d instructions", output, emu.Program.Len())
	},
}

var disCmd = &cobra.Command{
	Use:   "dis [flags] program",
	Short: "Disassemble a na32 binary program.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		emu := newEmulator(cmd)
		err := load(emu, args[0], false)
		if err != nil {
			log.Fatalf("%v: %v", args[0], err)
		}

		os.Stdout.WriteString(emu.Text())
	},
}

func init() {
	asmCmd.Flags().StringP("output", "o", "", "binary output file (default: source with .bin extension)")
	rootCmd.AddCommand(asmCmd)
	rootCmd.AddCommand(disCmd)
}
