// Package topic classifies a free-form question into one of a fixed set of
// subjects by case-insensitive keyword containment.
package topic

import (
	"fmt"
	"strings"
)

// Topic is a closed-set label for the subject of a question.
type Topic string

const (
	Emotions      Topic = "emotions"
	Jobs          Topic = "jobs"
	Creativity    Topic = "creativity"
	Consciousness Topic = "consciousness"
	Bias          Topic = "bias"
	Safety        Topic = "safety"
	Intelligence  Topic = "intelligence"
	Future        Topic = "future"
	Learning      Topic = "learning"
	Limits        Topic = "limits"
	General       Topic = "general"
)

// rule pairs a topic with the lowercase substrings that select it.
type rule struct {
	topic    Topic
	keywords []string
}

// rules is evaluated top to bottom; the first rule with a matching keyword
// wins. General is deliberately absent: it is the fallback.
var rules = []rule{
	{Emotions, []string{"emotion", "empathy", "feel", "affect", "sentiment", "mood"}},
	{Jobs, []string{"job", "work", "automation", "labor", "labour", "employ", "career"}},
	{Creativity, []string{"creativ", "artist", "artwork", "music", "poem", "poetry", "novel", "imagination", "original"}},
	{Consciousness, []string{"conscious", "sentien", "aware", "qualia", "soul", "mind"}},
	{Bias, []string{"bias", "fair", "discriminat", "prejudice", "racis", "sexis", "equit"}},
	{Safety, []string{"safe", "risk", "danger", "harm", "alignment", "control", "threat", "weapon"}},
	{Intelligence, []string{"intelligen", "smart", "understand", "reason", "think", "clever"}},
	{Future, []string{"future", "tomorrow", "predict", "forecast", "decade", "someday", "eventually"}},
	{Learning, []string{"learn", "train", "data", "model", "teach"}},
	{Limits, []string{"limit", "fail", "weakness", "can't", "cannot", "hallucinat", "mistake", "wrong"}},
}

// All returns every topic in classification order. General is always last.
func All() []Topic {
	out := make([]Topic, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.topic)
	}
	return append(out, General)
}

// Classify returns the first topic whose keywords appear in question,
// ignoring case. It returns General when nothing matches.
func Classify(question string) Topic {
	q := strings.ToLower(question)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(q, k) {
				return r.topic
			}
		}
	}
	return General
}

// Keywords returns a copy of the keywords that select t. General has none.
func Keywords(t Topic) []string {
	for _, r := range rules {
		if r.topic == t {
			return append([]string(nil), r.keywords...)
		}
	}
	return nil
}

// Parse converts a topic name into a Topic.
func Parse(s string) (Topic, error) {
	name := Topic(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range All() {
		if t == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("topic: unknown topic %q", s)
}
