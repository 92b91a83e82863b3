package tuitest

import (
	"bytes"
	"io"
)

// Programs probe the terminal for cursor position and colours at startup and
// block until answered, so the harness plays the terminal's part.
var terminalReplies = []struct {
	query []byte
	reply []byte
}{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

const (
	responderMaxBuffer = 256
	responderKeepTail  = 64
)

type terminalResponder struct {
	w   io.Writer
	buf []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, buf: make([]byte, 0, 128)}
}

// Process scans output for queries. A short tail is kept so queries split
// across reads are still seen.
func (tr *terminalResponder) Process(chunk []byte) {
	tr.buf = append(tr.buf, chunk...)
	for tr.answerOne() {
	}
	if len(tr.buf) > responderMaxBuffer {
		tr.buf = tr.buf[len(tr.buf)-responderKeepTail:]
	}
}

func (tr *terminalResponder) answerOne() bool {
	for _, entry := range terminalReplies {
		idx := bytes.Index(tr.buf, entry.query)
		if idx < 0 {
			continue
		}
		tr.buf = tr.buf[idx+len(entry.query):]
		_, _ = tr.w.Write(entry.reply)
		return true
	}
	return false
}
