package server

import (
	"strings"
	"testing"
)

func TestChatReply(t *testing.T) {
	pickFirst := func(n int) int { return 0 }

	tests := []struct {
		message string
		want    string
	}{
		{"hello there", "Hi there!"},
		{"how should I split my budget for water?", "25-30% of your total budget"},
		{"tell me about agriculture", "drought-resistant crops"},
		{"how do I get more points", "increase your development score"},
		{"any advice for me?", "Here's a helpful tip:"},
		{"what is the meaning of life", "I'm here to help you with your village development"},
	}

	for _, tt := range tests {
		got := chatReply(tt.message, pickFirst)
		if !strings.Contains(got, tt.want) {
			t.Errorf("chatReply(%q) = %q, want it to contain %q", tt.message, got, tt.want)
		}
	}
}

func TestChatReplyTipIsDeterministicWithPinnedPick(t *testing.T) {
	last := func(n int) int { return n - 1 }
	got := chatReply("give me a tip", last)
	want := "Here's a helpful tip: " + chatTips[len(chatTips)-1]
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
