/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "cpscm",
	Short: "cpscm is a small, trampolined Lisp interpreter",
	Long: `cpscm reads, evaluates and prints a small Lisp dialect.

Its evaluator is continuation-passing and fully trampolined: tail calls,
including self-recursive ones, run in constant Go stack space no matter
how many iterations they take.`,
}

// Execute is the CLI's single entry point, called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitWithError(err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "accepted for all commands; no command reads it")
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "cpscm:", err)
	os.Exit(1)
}
