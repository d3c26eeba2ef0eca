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
package scm

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// Repl runs an interactive read-eval-print loop on stdin/stdout, grounded
// directly on the teacher's prompt.go: readline for history and line
// editing, a green ">" prompt, a continuation prompt while a form spans
// multiple lines, and a red "=" prompt in front of the printed result.
func Repl() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32m>\033[0m ",
		HistoryFile:     ".cpscm-history.tmp",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	var pending strings.Builder
	for {
		prompt := "\033[32m>\033[0m "
		if pending.Len() > 0 {
			prompt = "\033[32m...\033[0m "
		}
		rl.SetPrompt(prompt)
		line, err := rl.Readline()
		if err != nil {
			return nil // Ctrl-D / Ctrl-C ends the session cleanly
		}
		pending.WriteString(line)
		pending.WriteString("\n")

		value, complete := tryReadEval(pending.String())
		if !complete {
			continue // needs another line
		}
		pending.Reset()
		if value != nil {
			fmt.Println("\033[31m=\033[0m " + value.(string))
		}
	}
}

// tryReadEval reads and evaluates src. It returns (nil, false) when src is
// an incomplete form (more lines needed) and (printedResult, true) once a
// full form has been read and evaluated or has failed; a recovered
// scm.Error becomes a one-line diagnostic instead of unwinding further, the
// same anti-panic closure shape as the teacher's prompt.go.
func tryReadEval(src string) (result any, complete bool) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(Error); ok {
				if e.Kind == ReadError && strings.Contains(e.Message, incompleteInputMessage) {
					complete = false
					return
				}
				result = "error: " + e.Error()
				complete = true
				return
			}
			fmt.Fprintln(os.Stderr, "panic:", r)
			result = ""
			complete = true
		}
	}()
	form := ReadAll(src)
	val := Eval(nil, form)
	return String(val), true
}
