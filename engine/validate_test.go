package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTopic(t *testing.T) {
	cases := []struct {
		topic string
		valid bool
	}{
		{"a/b/c", true},
		{"a", true},
		{"a//b", true},
		{"", false},
		{"a/+", false},
		{"a/#", false},
		{"a/b\x00c", false},
	}
	for _, c := range cases {
		err := validateTopic(c.topic)
		if c.valid {
			assert.NoError(t, err, "topic %q", c.topic)
		} else {
			assert.ErrorIs(t, err, ErrInvalidTopic, "topic %q", c.topic)
		}
	}
}

func TestValidateFilter(t *testing.T) {
	cases := []struct {
		filter string
		valid  bool
	}{
		{"a/b/c", true},
		{"a/+/c", true},
		{"a/#", true},
		{"#", true},
		{"+", true},
		{"+/+", true},
		{"a//b", true},
		{"", false},
		{"a/#/b", false},
		{"a/b#", false},
		{"a/+b", false},
		{"a/b+", false},
	}
	for _, c := range cases {
		err := validateFilter(c.filter)
		if c.valid {
			assert.NoError(t, err, "filter %q", c.filter)
		} else {
			assert.ErrorIs(t, err, ErrInvalidFilter, "filter %q", c.filter)
		}
	}
}

func TestSplitTopicLevels(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitTopicLevels("a/b/c"))
	assert.Equal(t, []string{"a", "", "b"}, splitTopicLevels("a//b"))
	assert.Nil(t, splitTopicLevels(""))
	assert.Equal(t, []string{"a"}, splitTopicLevels("a"))
}
