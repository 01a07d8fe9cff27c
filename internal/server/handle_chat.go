package server

import (
	"math/rand"
	"net/http"
	"strings"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

const chatFallback = "I'm here to help you with your village development! Ask me about game tips, sustainable development strategies, or just say hi! 😊"

// chatRule maps keywords to a canned advisor reply. First match wins.
type chatRule struct {
	keywords []string
	reply    string
}

var chatRules = []chatRule{
	{[]string{"hi", "hello", "hey"},
		"Hi there! 👋 How can I help you today with your village development? Ask me anything!"},
	{[]string{"how are you", "how you doing"},
		"I'm doing great! Ready to build an amazing sustainable village together. What would you like to know?"},
	{[]string{"thank"},
		"It's my responsibility and pleasure to help you! Need any other village development advice?"},
	{[]string{"bye", "goodbye"},
		"See you soon! I'll be here when you're ready to continue your village development journey. Your progress is saved!"},
	{[]string{"how to play", "game work", "tutorial"},
		"This game lets you develop villages across different sectors like agriculture, education, and healthcare. Start by selecting a village, then choose sectors to develop through fun mini-games and challenges. Each decision impacts your development score, budget efficiency, and environmental impact. The goal is to create the most sustainable and well-developed village!"},
	{[]string{"farming", "agriculture"},
		"For agriculture, consider the local climate! In semi-arid regions, drought-resistant crops like millets, pulses, and oilseeds work best. Implementing drip irrigation can save up to 60% water compared to conventional methods. Fun fact: mixing crop varieties can boost your environmental impact score by 15%!"},
	{[]string{"score", "points"},
		"Want to increase your development score? Focus on sustainable solutions that last 10+ years and meet multiple needs with single projects. The secret formula is: sustainability + innovation + community involvement = maximum points! Try completing sector challenges with the 'green' options for bonus environmental points."},
	{[]string{"road", "terrain"},
		"Building roads? Pay attention to the terrain! Steep hills make paved roads expensive, while areas with seasonal streams need proper drainage. Did you know? Building elevated roads in flood-prone areas can earn you resilience bonus points! Consider using local materials to reduce costs by 20%."},
	{[]string{"school", "education"},
		"For education projects, the ideal location for a school would be central, on slightly elevated ground away from flood zones. Pro tip: combining a school with a community center can boost your development score by 25%! Consider implementing solar panels on the roof for an environmental bonus."},
	{[]string{"health", "hospital", "clinic"},
		"Healthcare facilities should be accessible to all villagers. A central location works best, with satellite health posts in remote areas. Fun fact: every 10% improvement in healthcare access can boost your village's overall productivity by 15%! Consider telemedicine options for remote areas to maximize your impact score."},
	{[]string{"energy", "power", "electricity"},
		"For energy development, solar works great in sunny regions, while micro-hydro is perfect near streams. Did you know? A mix of renewable energy sources can increase your resilience score by 30%! Start small with solar lanterns before moving to mini-grids for the best budget efficiency."},
	{[]string{"cheat", "hack", "shortcut"},
		"There are no cheats, but here's a little secret: focusing on water infrastructure first in any village creates a multiplier effect on all your other development efforts. It's like a natural boost to everything else you build!"},
	{[]string{"difficult", "hard", "challenge"},
		"Finding it challenging? That's part of the fun! Real development work is complex too. Try focusing on one sector at a time, and remember that small, consistent improvements add up to big results over time. You can always revisit your decisions and try different approaches!"},
}

var chatTips = []string{
	"Balance your resource allocation carefully - going all-in on budget without sustainability will hurt your long-term score!",
	"Random events occur during implementation phase - always keep some reserve funds for emergencies!",
	"Some buildings provide passive resource generation - prioritize these early for compound benefits!",
	"Different sectors have synergy effects - developing education improves healthcare outcomes too!",
	"Villages in different states have unique challenges and advantages - explore them all!",
	"Complete all mini-games in a sector to unlock special buildings and bonuses!",
}

// chatReply picks the canned answer; pick chooses the random tip and
// exists so tests can pin it.
func chatReply(message string, pick func(n int) int) string {
	message = strings.ToLower(message)

	// Budget+water beats the single-keyword rules.
	if strings.Contains(message, "budget") && strings.Contains(message, "water") {
		return "For a typical village with 1,250 residents, I recommend allocating 25-30% of your total budget for clean water access. Water is essential! You can increase efficiency by implementing rainwater harvesting systems too. Pro tip: combining water and agricultural projects can maximize your impact score!"
	}

	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(message, kw) {
				return rule.reply
			}
		}
	}

	if strings.Contains(message, "tip") || strings.Contains(message, "hint") || strings.Contains(message, "advice") {
		return "Here's a helpful tip: " + chatTips[pick(len(chatTips))]
	}

	return chatFallback
}

func handleChat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		writeJSON(w, http.StatusOK, ChatResponse{Response: chatReply(req.Message, rand.Intn)})
	}
}
