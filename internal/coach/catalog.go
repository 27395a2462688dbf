package coach

import "blaizn/internal/domain"

// The fixed daily task catalog. Order matters: DefaultDailyTasks
// preserves it when filtering.
var taskCatalog = []domain.Task{
	{ID: 1, Text: "Review your goals and plan your day", Track: domain.TrackAll},
	{ID: 2, Text: "Work on portfolio project (1-2 hours)", Track: domain.TrackFreelance},
	{ID: 3, Text: "Contact 2 potential local clients", Track: domain.TrackFreelance},
	{ID: 4, Text: "Apply to 3 remote job positions", Track: domain.TrackRemoteJob},
	{ID: 5, Text: "Update LinkedIn profile and engage with posts", Track: domain.TrackRemoteJob},
	{ID: 6, Text: "Build one feature for your SaaS MVP", Track: domain.TrackSaaS},
	{ID: 7, Text: "Research and validate your product idea", Track: domain.TrackSaaS},
	{ID: 8, Text: "Learn something new (30 min tutorial/course)", Track: domain.TrackAll},
	{ID: 9, Text: "Network: Connect with 2 people in your field", Track: domain.TrackAll},
}

var trackSuggestions = map[int][]string{
	domain.TrackFreelance: {
		"Reach out to 3 local solar companies with your portfolio today",
		"Complete the electrical calculator project by end of week",
		"Post your latest project on LinkedIn with #NigerianTech",
		"Schedule 2 client calls for tomorrow morning",
		"Update your service pricing based on market research",
		"Create a professional invoice template for clients",
		"Join 2 Nigerian business WhatsApp groups to find clients",
		"Build a simple website showcase for potential clients",
	},
	domain.TrackRemoteJob: {
		"Apply to 5 remote positions on Wellfound/RemoteOK today",
		"Enhance your GitHub profile with detailed README files",
		"Spend 2 hours learning TypeScript fundamentals",
		"Connect with 10 Nigerian remote developers on LinkedIn",
		"Complete one coding challenge and add to portfolio",
		"Update your LinkedIn headline to 'Open to Remote Opportunities'",
		"Contribute to an open-source project on GitHub",
		"Practice system design for interview preparation",
	},
	domain.TrackSaaS: {
		"Interview 3 potential customers about their pain points",
		"Build your MVP's core feature: user authentication",
		"Research pricing for similar SaaS in Nigerian market",
		"Write a Twitter thread about your building journey",
		"Design the landing page for your SaaS product",
		"Set up analytics to track user behavior",
		"Create a waitlist signup form and share it",
		"Document your API for future developers",
	},
}

// Seven static motivations; the eighth is templated with a random
// percentage at selection time.
var staticMotivations = []string{
	"Your unique background is your competitive advantage. Use it!",
	"Small daily wins compound into massive success. You're on track.",
	"Every successful founder started exactly where you are now.",
	"Your future self will thank you for the work you're putting in today.",
	"Consistency beats intensity. Show up every day, even for 30 minutes.",
	"The Nigerian tech ecosystem needs builders like you. Keep going!",
	"Your breakthrough is closer than you think. Don't stop now.",
}
