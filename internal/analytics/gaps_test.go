package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gautham-gln/chatSummarizer/internal/parse"
)

func TestLongestGap(t *testing.T) {
	msgs := []parse.Message{
		msg("Alice", "a", at(9, 0)),
		msg("Bob", "b", at(9, 10)),
		msg("Alice", "c", at(12, 10)),
	}

	gap := LongestGap(msgs)

	require.NotNil(t, gap)
	require.Equal(t, 3*time.Hour, gap.Duration)
	require.Equal(t, at(9, 10), gap.From)
	require.Equal(t, at(12, 10), gap.To)
}

func TestLongestGapFirstSeenWinsTies(t *testing.T) {
	msgs := []parse.Message{
		msg("Alice", "a", at(9, 0)),
		msg("Bob", "b", at(10, 0)),
		msg("Alice", "c", at(11, 0)),
	}

	gap := LongestGap(msgs)

	require.NotNil(t, gap)
	require.Equal(t, time.Hour, gap.Duration)
	require.Equal(t, at(9, 0), gap.From, "first of two equal gaps must win")
}

func TestLongestGapNeedsTwoMessages(t *testing.T) {
	require.Nil(t, LongestGap(nil))
	require.Nil(t, LongestGap([]parse.Message{msg("Alice", "a", at(9, 0))}))
}
