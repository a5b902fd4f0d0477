package chat

import "strings"

// rule matches when every keyword in one of its Any groups is present.
// Groups are alternatives, keywords inside a group must all match.
type rule struct {
	Any   [][]string
	Reply string
}

var rules = []rule{
	{
		Any:   [][]string{{"passport"}},
		Reply: "To apply for a Passport, go to 'E-Services' -> 'Travel & Visa'. The fee is LKR 20,000 for normal service.",
	},
	{
		Any:   [][]string{{"nic"}, {"identity"}},
		Reply: "National Identity Cards (NIC) are issued by the DRP. You need your Birth Certificate and a GS Character Certificate to apply.",
	},
	{
		Any:   [][]string{{"birth", "certificate"}},
		Reply: "You can request a copy of a Birth Certificate instantly via this portal. Go to 'E-Services' -> 'Personal Identity'.",
	},
	{
		Any:   [][]string{{"police"}},
		Reply: "Police Clearance Reports take approximately 14 days. You can apply online and track the status in your Dashboard.",
	},
	{
		Any:   [][]string{{"driver"}, {"license"}},
		Reply: "Driving Licenses are handled by the Dept of Motor Traffic. We currently offer Revenue License renewals.",
	},
	{
		Any:   [][]string{{"grama"}, {"gs"}},
		Reply: "Your Grama Niladhari (GS) must verify all residency and character certificate requests before they are issued.",
	},
	{
		Any:   [][]string{{"payment"}, {"fee"}},
		Reply: "We accept VISA, MasterCard, and LankaQR. All payments are secured via PayHere.",
	},
	{
		Any:   [][]string{{"hello"}, {"hi"}},
		Reply: "Ayubowan! I am the Smart Citizen Virtual Assistant. How can I help you today?",
	},
}

const fallbackReply = "I am sorry, I didn't quite understand that. Try asking about 'Passports', 'NIC', 'Birth Certificates', or 'Payments'."

type ChatService interface {
	Reply(message string) string
}

type ChatServiceImpl struct{}

func NewChatService() ChatService {
	return &ChatServiceImpl{}
}

// Reply runs the message through the keyword rules in order and returns the
// first match, falling back to a generic hint.
func (s *ChatServiceImpl) Reply(message string) string {
	msg := strings.ToLower(message)

	for _, r := range rules {
		for _, group := range r.Any {
			if containsAll(msg, group) {
				return r.Reply
			}
		}
	}
	return fallbackReply
}

func containsAll(msg string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(msg, kw) {
			return false
		}
	}
	return true
}
