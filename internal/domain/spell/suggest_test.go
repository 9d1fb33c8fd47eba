package spell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemspell/gemspell/internal/domain/spell"
)

func TestSuggestRanksByDistance(t *testing.T) {
	v := spell.New("rack", "rake", "rspec", "rails")

	got := spell.Suggest(v, "rakc", 2)

	// rake is one edit away, rack two; rack sits earlier in the
	// vocabulary but distance wins over vocabulary order.
	require.Equal(t, []string{"rake", "rack"}, got)
}

func TestSuggestTieBreaksByVocabularyOrder(t *testing.T) {
	v := spell.New("rack", "rake", "race")

	got := spell.Suggest(v, "race", 1)
	assert.Empty(t, got, "exact match should short-circuit")

	got = spell.Suggest(v, "rabe", 1)
	require.Equal(t, []string{"rake", "race"}, got)

	// Same words, reversed vocabulary: the tie flips with it.
	reversed := spell.New("race", "rake", "rack")
	got = spell.Suggest(reversed, "rabe", 1)
	require.Equal(t, []string{"race", "rake"}, got)
}

func TestSuggestExactMatchReturnsNothing(t *testing.T) {
	v := spell.New("sidekiq", "sidekick")

	assert.Empty(t, spell.Suggest(v, "sidekiq", 2))
}

func TestSuggestNeverReturnsQuery(t *testing.T) {
	v := spell.New("puma", "rails")

	for _, q := range []string{"puma", "pumma", "rails", "railss"} {
		for _, s := range spell.Suggest(v, q, 2) {
			assert.NotEqual(t, q, s)
		}
	}
}

func TestSuggestWideningBoundOnlyGrows(t *testing.T) {
	v := spell.New("rails", "rake", "rack", "rspec", "redis", "resque")

	prev := 0
	for max := 1; max <= 4; max++ {
		got := spell.Suggest(v, "rasp", max)
		assert.GreaterOrEqual(t, len(got), prev, "max %d shrank the result set", max)
		prev = len(got)
	}
}

func TestSuggestEmptyVocabulary(t *testing.T) {
	assert.Empty(t, spell.Suggest(spell.New(), "rails", 2))
}

func TestSuggestEmptyQuery(t *testing.T) {
	v := spell.New("a", "ab", "abc", "rails")

	// Only words short enough to reach from "" by maxDistance edits.
	require.Equal(t, []string{"a", "ab"}, spell.Suggest(v, "", 2))
}

func TestVocabularyDeduplicatesKeepingFirst(t *testing.T) {
	v := spell.New("rails", "rake", "rails", "", "rake", "puma")

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []string{"rails", "rake", "puma"}, v.Words())
	assert.True(t, v.Contains("puma"))
	assert.False(t, v.Contains("rials"))
}

func TestVocabularyAddLeavesReceiverUntouched(t *testing.T) {
	v := spell.New("rails")
	grown := v.Add("rake", "rails", "puma")

	assert.Equal(t, 1, v.Len())
	assert.Equal(t, []string{"rails", "rake", "puma"}, grown.Words())
}

func TestVocabularyWordsReturnsCopy(t *testing.T) {
	v := spell.New("rails", "rake")

	words := v.Words()
	words[0] = "mutated"

	assert.Equal(t, []string{"rails", "rake"}, v.Words())
}
