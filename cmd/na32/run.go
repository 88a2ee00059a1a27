package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [program]",
	Short: "Run a na32 program.",
	Long: `Run a na32 program, binary unless --source is given. If no program is
named, its location is read from standard input. The process exits with the
program's result code.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var filename string
		if len(args) == 0 {
			fmt.Print("File Location: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil && len(line) == 0 {
				log.Fatal(err)
			}
			filename = strings.TrimSpace(line)
		} else {
			filename = args[0]
		}

		emu := newEmulator(cmd)
		err := load(emu, filename, GetFlag(cmd, "source"))
		if err != nil {
			log.Fatalf("%v: %v", filename, err)
		}

		start := time.Now()
		result, err := emu.Run()
		elapsed := time.Since(start)
		if err != nil {
			log.Debugf("%v: stopped at line %d", filename, emu.LineNo())
		}

		fmt.Printf("Program executed in %vs with result: %d\n", elapsed.Seconds(), result)

		os.Exit(int(result))
	},
}

func init() {
	runCmd.Flags().BoolP("source", "s", false, "program is assembly source text")
	rootCmd.AddCommand(runCmd)
}
