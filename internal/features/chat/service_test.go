package chat

import (
	"strings"
	"testing"
)

func TestReplyKeywordRouting(t *testing.T) {
	svc := NewChatService()

	tests := []struct {
		message string
		want    string
	}{
		{"How do I get a passport?", "Passport"},
		{"I lost my NIC", "National Identity Cards"},
		{"my identity card expired", "National Identity Cards"},
		{"need a birth certificate copy", "Birth Certificate"},
		{"police clearance status", "Police Clearance"},
		{"renew my driver licence", "Motor Traffic"},
		{"who is my grama niladhari", "Grama Niladhari"},
		{"what payment methods do you take", "PayHere"},
		{"what is the fee", "PayHere"},
		{"hello there", "Ayubowan"},
		{"Hi", "Ayubowan"},
	}

	for _, tt := range tests {
		got := svc.Reply(tt.message)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Reply(%q) = %q, want it to mention %q", tt.message, got, tt.want)
		}
	}
}

func TestReplyFallback(t *testing.T) {
	svc := NewChatService()

	got := svc.Reply("what is the weather like")
	if got != fallbackReply {
		t.Errorf("expected fallback reply, got %q", got)
	}
}

func TestReplyIsCaseInsensitive(t *testing.T) {
	svc := NewChatService()

	if svc.Reply("PASSPORT") != svc.Reply("passport") {
		t.Error("matching must be case insensitive")
	}
}

func TestBirthAloneDoesNotMatchCertificateRule(t *testing.T) {
	svc := NewChatService()

	// "birth" without "certificate" falls through to the fallback
	if got := svc.Reply("birth"); got != fallbackReply {
		t.Errorf("expected fallback, got %q", got)
	}
}
