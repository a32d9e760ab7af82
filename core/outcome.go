package core

import "strings"

// outcomeKind classifies how a git invocation was absorbed by a pipeline.
type outcomeKind int

const (
	outcomeOK        outcomeKind = iota // invocation succeeded
	outcomeRecovered                    // invocation failed, sentinel substituted
	outcomeFatal                        // invocation failed, no recovery applies
)

// outcome is the result of one git invocation after applying a recovery
// policy. Pipelines either record a fatal outcome in a status field or keep
// going with the recovered text.
type outcome struct {
	text string
	kind outcomeKind
	err  error
}

// classify turns raw invocation results into an outcome. Output is trimmed
// of trailing newlines so emptiness checks and line splits see what the
// command printed, not the final terminator.
func classify(out []byte, err error) outcome {
	if err != nil {
		return outcome{kind: outcomeFatal, err: err}
	}
	return outcome{text: strings.TrimRight(string(out), "\n"), kind: outcomeOK}
}

// orSentinel downgrades a fatal outcome to a recovered one carrying the
// sentinel text. Successful outcomes pass through unchanged.
func (o outcome) orSentinel(sentinel string) outcome {
	if o.kind != outcomeFatal {
		return o
	}
	return outcome{text: sentinel, kind: outcomeRecovered, err: o.err}
}

// fatal reports whether the outcome still requires fatal handling.
func (o outcome) fatal() bool {
	return o.kind == outcomeFatal
}
