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
	"time"

	"github.com/google/uuid"
)

// Tracer records merge-point events to a Chrome-trace-format JSON file, the
// same wire format the teacher's Tracefile wrote for per-HTTP-request spans
// (one JSON object per event, the whole file wrapped in a top-level array).
// Here each event marks a detected merge point instead of a request.
type Tracer struct {
	file    *os.File
	start   time.Time
	isFirst bool
	runID   uuid.UUID
}

// NewTracer creates path and opens the JSON array, tagging the run with a
// fresh uuid so multiple trace files from the same process are distinguishable.
func NewTracer(path string) (*Tracer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if _, err := f.WriteString("[\n"); err != nil {
		f.Close()
		return nil, err
	}
	return &Tracer{file: f, start: time.Now(), isFirst: true, runID: uuid.New()}, nil
}

// Close finishes the JSON array and releases the underlying file.
func (t *Tracer) Close() error {
	if t == nil {
		return nil
	}
	if _, err := t.file.WriteString("\n]\n"); err != nil {
		t.file.Close()
		return err
	}
	return t.file.Close()
}

func (t *Tracer) emit(l *Lambda, count uint64) {
	if t == nil {
		return
	}
	if !t.isFirst {
		t.file.WriteString(",\n")
	}
	t.isFirst = false
	ts := time.Since(t.start).Microseconds()
	fmt.Fprintf(t.file,
		`{"name":"merge-point-%p","cat":"eval","ph":"i","ts":%d,"pid":1,"tid":1,"s":"p","run":%q,"count":%d}`,
		l, ts, t.runID.String(), count)
}

// activeTracer is the process-wide installed tracer, nil when no --trace
// flag was given. The evaluator is single-fiber (spec §5), so a bare
// package variable needs no synchronization.
var activeTracer *Tracer

// InstallTracer makes t the tracer future merge-point detections report to.
// Passing nil disables tracing.
func InstallTracer(t *Tracer) {
	activeTracer = t
}

// lastLambda and mergePointCounts implement the detection half of spec
// §4.8's merge point: a self-tail-recursive lambda is exactly a Lambda that
// gets applied again immediately after itself (its __self__ binding means it
// is, by construction, able to call itself, but only a consecutive repeat
// application is the merge point a JIT would key on).
var (
	lastLambda       *Lambda
	mergePointCounts = make(map[*Lambda]uint64)
)

// recordMergePoint is called from applyFn on every Lambda application. It
// does not perform any native compilation -- see SPEC_FULL §11.1 for why --
// it only counts repeat applications of the same Lambda and, if a Tracer is
// installed, emits one JSON event per repeat.
func recordMergePoint(l *Lambda) {
	if lastLambda == l {
		mergePointCounts[l]++
		activeTracer.emit(l, mergePointCounts[l])
	} else {
		lastLambda = l
	}
}
