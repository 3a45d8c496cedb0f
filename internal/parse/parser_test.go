package parse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleChat = "12/05/23, 9:00 am - Alice: Hi\n" +
	"12/05/23, 9:05 am - Bob: Hello\n" +
	"still talking\n" +
	"12/05/23, 9:10 am - Alice: Bye"

func TestParseScenario(t *testing.T) {
	res := Parse(sampleChat, time.UTC)

	require.Empty(t, res.Warnings)
	require.Len(t, res.Messages, 3)

	require.Equal(t, "Alice", res.Messages[0].Sender)
	require.Equal(t, "Hi", res.Messages[0].Body)
	require.Equal(t, time.Date(2023, 5, 12, 9, 0, 0, 0, time.UTC), res.Messages[0].Timestamp)

	bob := res.Messages[1]
	require.Equal(t, "Bob", bob.Sender)
	require.Equal(t, "Hello\nstill talking", bob.Body)
	require.Equal(t, 19, bob.Length())

	require.Equal(t, "Bye", res.Messages[2].Body)
}

func TestParseLengthMatchesBody(t *testing.T) {
	text := "12/05/23, 9:00 am - Alice: héllo\n" +
		"sécond line\n" +
		"12/05/23, 9:01 am - Bob: 😀"

	res := Parse(text, time.UTC)

	require.Len(t, res.Messages, 2)
	for _, m := range res.Messages {
		require.Equal(t, len([]rune(m.Body)), m.Length())
	}
	require.Equal(t, 1, res.Messages[1].Length(), "one emoji is one character")
}

func TestParsePreservesSourceOrder(t *testing.T) {
	res := Parse(sampleChat, time.UTC)

	var headers []string
	for _, m := range res.Messages {
		first := strings.SplitN(m.Body, "\n", 2)[0]
		headers = append(headers, m.Sender+": "+first)
	}
	require.Equal(t, []string{"Alice: Hi", "Bob: Hello", "Alice: Bye"}, headers)
}

func TestParseDropsNoiseBeforeFirstHeader(t *testing.T) {
	text := "loose line one\n" +
		"loose line two\n" +
		"12/05/23, 9:00 am - Alice: Hi"

	res := Parse(text, time.UTC)

	require.Len(t, res.Messages, 1)
	require.Equal(t, "Hi", res.Messages[0].Body)
}

func TestParseContinuationKeptVerbatim(t *testing.T) {
	text := "12/05/23, 9:00 am - Alice: Hi\n" +
		"   indented   "

	res := Parse(text, time.UTC)

	require.Len(t, res.Messages, 1)
	require.Equal(t, "Hi\n   indented   ", res.Messages[0].Body)
}

func TestParseColonInSenderIsNotAHeader(t *testing.T) {
	text := "12/05/23, 9:00 am - Alice: Hi\n" +
		"12/05/23, 9:05 am - Bob: note: remember this"

	res := Parse(text, time.UTC)

	require.Len(t, res.Messages, 2)
	require.Equal(t, "Bob", res.Messages[1].Sender)
	require.Equal(t, "note: remember this", res.Messages[1].Body)
}

func TestParseMeridiemVariants(t *testing.T) {
	text := "1/5/23, 9:00AM - Alice: upper no space\n" +
		"12/05/23, 1:30 PM - Bob: upper with space\n" +
		"12/05/23, 12:00 am - Carol: midnight"

	res := Parse(text, time.UTC)

	require.Empty(t, res.Warnings)
	require.Len(t, res.Messages, 3)
	require.Equal(t, 9, res.Messages[0].Timestamp.Hour())
	require.Equal(t, 13, res.Messages[1].Timestamp.Hour())
	require.Equal(t, 0, res.Messages[2].Timestamp.Hour())
}

func TestParseInvalidTimestampBecomesWarning(t *testing.T) {
	text := "31/02/23, 9:00 am - Alice: impossible date\n" +
		"12/05/23, 9:05 am - Bob: fine"

	res := Parse(text, time.UTC)

	require.Len(t, res.Messages, 1)
	require.Equal(t, "Bob", res.Messages[0].Sender)

	require.Len(t, res.Warnings, 1)
	require.Equal(t, 1, res.Warnings[0].LineNumber)
	require.ErrorIs(t, res.Warnings[0].Err, ErrInvalidTimestamp)
}

func TestParseEmptyAndUnmatchedInput(t *testing.T) {
	require.Empty(t, Parse("", time.UTC).Messages)
	require.Empty(t, Parse("nothing\nmatches\nhere", time.UTC).Messages)
}

func TestParseFlushesTrailingMessageAtEOF(t *testing.T) {
	text := "12/05/23, 9:00 am - Alice: last one\ntrailing continuation"

	res := Parse(text, time.UTC)

	require.Len(t, res.Messages, 1)
	require.Equal(t, "last one\ntrailing continuation", res.Messages[0].Body)
}
