package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gautham-gln/chatSummarizer/internal/parse"
)

func msg(sender, body string, ts time.Time) parse.Message {
	return parse.Message{Sender: sender, Body: body, Timestamp: ts}
}

func at(hour, min int) time.Time {
	return time.Date(2023, 5, 12, hour, min, 0, 0, time.UTC)
}

func TestSortByTimeDoesNotMutateInput(t *testing.T) {
	msgs := []parse.Message{
		msg("Bob", "second", at(10, 0)),
		msg("Alice", "first", at(9, 0)),
	}

	sorted := SortByTime(msgs)

	require.Equal(t, "Alice", sorted[0].Sender)
	require.Equal(t, "Bob", sorted[1].Sender)
	require.Equal(t, "Bob", msgs[0].Sender, "input order must be preserved")
}

func TestSortByTimeStableOnTies(t *testing.T) {
	msgs := []parse.Message{
		msg("Alice", "a", at(9, 0)),
		msg("Bob", "b", at(9, 0)),
		msg("Carol", "c", at(9, 0)),
	}

	sorted := SortByTime(msgs)

	require.Equal(t, []string{"Alice", "Bob", "Carol"},
		[]string{sorted[0].Sender, sorted[1].Sender, sorted[2].Sender})
}

func TestCountPerSender(t *testing.T) {
	msgs := []parse.Message{
		msg("Alice", "Hi", at(9, 0)),
		msg("Bob", "Hello", at(9, 5)),
		msg("Alice", "Bye", at(9, 10)),
	}

	counts := CountPerSender(msgs)

	require.Equal(t, map[string]int{"Alice": 2, "Bob": 1}, counts)
}

func TestCountPerSenderEmpty(t *testing.T) {
	require.Empty(t, CountPerSender(nil))
}

func TestSendersFirstSeenOrder(t *testing.T) {
	msgs := []parse.Message{
		msg("Bob", "a", at(9, 0)),
		msg("Alice", "b", at(9, 1)),
		msg("Bob", "c", at(9, 2)),
	}

	require.Equal(t, []string{"Bob", "Alice"}, Senders(msgs))
}
