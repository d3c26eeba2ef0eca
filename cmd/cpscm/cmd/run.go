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
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/launix-de/cpscm/scm"
)

var (
	evalExpr  string
	watchFlag bool
	traceFile string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Read, evaluate and print a script file (or an inline expression with -e)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate this expression instead of a file")
	runCmd.Flags().BoolVar(&watchFlag, "watch", false, "re-run the file every time it changes on disk")
	runCmd.Flags().StringVar(&traceFile, "trace", "", "write merge-point trace events to this file")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if traceFile != "" {
		tracer, err := scm.NewTracer(traceFile)
		if err != nil {
			return err
		}
		scm.InstallTracer(tracer)
		defer tracer.Close()
	}

	if evalExpr != "" {
		return evalSource(evalExpr)
	}
	if len(args) == 0 {
		return fmt.Errorf("run requires a file argument or --eval")
	}
	path := args[0]
	if watchFlag {
		return watchAndRun(path)
	}
	return runFile(path)
}

// runFile reads path, evaluates its contents, and prints the result of the
// last top-level form. A recovered scm.Error becomes a plain error return
// (cobra turns that into a stderr diagnostic and a non-zero exit, spec §6's
// CLI contract); any other panic is a genuine bug and is left to propagate.
func runFile(path string) (err error) {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return readErr
	}
	return evalSource(string(data))
}

func evalSource(src string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(scm.Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	val := scm.Eval(nil, scm.ReadAll(src))
	fmt.Println(scm.String(val))
	return nil
}

// watchAndRun runs path once, then re-runs it every time the file changes,
// until the process is interrupted. Grounded on fsnotify's standard
// directory-watch recipe (watching the containing directory catches editors
// that replace the file via rename-on-save, not just in-place writes).
func watchAndRun(path string) error {
	if err := runFile(path); err != nil {
		fmt.Fprintln(os.Stderr, "cpscm:", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := runFile(path); err != nil {
				fmt.Fprintln(os.Stderr, "cpscm:", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "cpscm: watch error:", err)
		}
	}
}
