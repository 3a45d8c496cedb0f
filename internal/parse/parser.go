package parse

import (
	"regexp"
	"strings"
	"time"
)

// headerRe recognizes a message header line:
//
//	12/05/23, 9:00 am - Alice: Hi
//
// Sender is everything up to the first colon and may not itself contain
// one. The meridiem is case-insensitive with an optional leading space.
var headerRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2}), (\d{1,2}:\d{2} ?(?i:am|pm)) - ([^:]+): (.*)$`)

// Parse converts normalized export text into an ordered message
// sequence with a single forward pass. Lines that fail the header
// grammar are folded into the in-progress message as continuations, or
// dropped when no message has started yet. Headers whose date or time
// cannot be decoded are excluded and reported as warnings; the parser
// itself never fails.
func Parse(text string, loc *time.Location) Result {
	var res Result
	var current *Message

	for i, line := range strings.Split(text, "\n") {
		m := headerRe.FindStringSubmatch(line)
		if m == nil {
			if current != nil {
				// Continuation: verbatim, no per-line trimming.
				current.Body += "\n" + line
			}
			continue
		}

		if current != nil {
			res.Messages = append(res.Messages, *current)
			current = nil
		}

		ts, err := DecodeTimestamp(m[1], m[2], loc)
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{
				LineNumber: i + 1,
				Line:       line,
				Err:        err,
			})
			continue
		}

		current = &Message{
			Sender:    strings.TrimSpace(m[3]),
			Body:      strings.TrimSpace(m[4]),
			Timestamp: ts,
		}
	}

	if current != nil {
		res.Messages = append(res.Messages, *current)
	}
	return res
}
