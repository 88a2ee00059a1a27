// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/na32/emulator"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "na32",
	Short: "Assembler and virtual machine for the na32 instruction set.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// GetFlag gets an expected flag, or exit if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Fatal(err)
	}

	return r
}

// GetInt gets an expected int flag, or exit if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		log.Fatal(err)
	}

	return r
}

// GetString gets an expected string flag, or exit if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		log.Fatal(err)
	}

	return r
}

// newEmulator builds an emulator from the machine flags.
func newEmulator(cmd *cobra.Command) (emu *emulator.Emulator) {
	config := emulator.DefaultConfig()
	config.MemorySize = GetInt(cmd, "memory-size")
	config.StackSize = GetInt(cmd, "stack-size")
	config.MaxSteps = GetInt(cmd, "max-steps")

	emu = emulator.NewEmulator(config)
	emu.Verbose = GetFlag(cmd, "verbose")
	emu.Terminal.Output = os.Stdout

	return
}

// load reads a program file as binary, or as assembly text if source is set.
func load(emu *emulator.Emulator, filename string, source bool) (err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return
	}

	if source {
		_, err = emu.LoadText(string(data))
	} else {
		_, err = emu.LoadBytes(data)
	}

	return
}

func init() {
	config := emulator.DefaultConfig()
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Int("memory-size", config.MemorySize, "number of memory cells")
	rootCmd.PersistentFlags().Int("stack-size", config.StackSize, "maximum call depth")
	rootCmd.PersistentFlags().Int("max-steps", config.MaxSteps, "abort after this many instructions (0 for no limit)")
}
