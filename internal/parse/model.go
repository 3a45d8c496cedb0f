package parse

import (
	"time"
	"unicode/utf8"
)

// Message is one chat message reconstructed from the export text.
// ID is assigned by the store on insert and stays zero until then.
type Message struct {
	ID        int64
	Sender    string
	Body      string
	Timestamp time.Time
}

// Length reports the character count of the body. It is derived on
// demand so it can never drift from the body after continuation lines
// are folded in.
func (m Message) Length() int {
	return utf8.RuneCountInString(m.Body)
}

// Warning records a line whose header matched but whose date or time
// could not be decoded. The record is excluded from the parse output.
type Warning struct {
	LineNumber int
	Line       string
	Err        error
}

// Result is the output of a single parse pass.
type Result struct {
	Messages []Message
	Warnings []Warning
}
