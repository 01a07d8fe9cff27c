package game

// Challenge is one scenario decision with three weighted options.
type Challenge struct {
	ID          int               `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Options     []ChallengeOption `json:"options"`
}

type ChallengeOption struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Impact Impact `json:"impact"`
}

// Base challenges every sector faces, always first in the sequence.
var baseChallenges = []Challenge{
	{
		ID:          1,
		Title:       "Unexpected Weather",
		Description: "Monsoon rains have come early. How do you adapt your project timeline?",
		Options: []ChallengeOption{
			{ID: 1, Text: "Pause work and wait for better weather", Impact: Impact{Development: -10, Budget: -5, Environment: 0}},
			{ID: 2, Text: "Continue work but implement flood protection measures", Impact: Impact{Development: 0, Budget: -10, Environment: 5}},
			{ID: 3, Text: "Accelerate timeline by adding more workers", Impact: Impact{Development: 10, Budget: -15, Environment: -5}},
		},
	},
	{
		ID:          2,
		Title:       "Community Feedback",
		Description: "Villagers have suggestions for the project. How do you respond?",
		Options: []ChallengeOption{
			{ID: 1, Text: "Implement their ideas, even if it delays the project", Impact: Impact{Development: 15, Budget: -10, Environment: 5}},
			{ID: 2, Text: "Consider their input but stick mostly to the original plan", Impact: Impact{Development: 5, Budget: 0, Environment: 0}},
			{ID: 3, Text: "Thank them but continue with the expert-designed plan", Impact: Impact{Development: -5, Budget: 5, Environment: 0}},
		},
	},
}

var sectorChallenges = map[string][]Challenge{
	"Agriculture": {
		{
			ID:          101,
			Title:       "Crop Selection",
			Description: "Which approach will you take for crop cultivation?",
			Options: []ChallengeOption{
				{ID: 1, Text: "Traditional crops using organic methods", Impact: Impact{Development: 5, Budget: 0, Environment: 15}},
				{ID: 2, Text: "High-yield hybrid varieties with modern techniques", Impact: Impact{Development: 15, Budget: -10, Environment: -5}},
				{ID: 3, Text: "Mixed approach with crop rotation", Impact: Impact{Development: 10, Budget: -5, Environment: 10}},
			},
		},
	},
	"Health": {
		{
			ID:          201,
			Title:       "Medical Facility Type",
			Description: "What type of healthcare facility will you establish?",
			Options: []ChallengeOption{
				{ID: 1, Text: "Modern clinic with latest equipment", Impact: Impact{Development: 20, Budget: -25, Environment: -5}},
				{ID: 2, Text: "Basic health center with essential services", Impact: Impact{Development: 15, Budget: -10, Environment: 0}},
				{ID: 3, Text: "Mobile health units to reach remote areas", Impact: Impact{Development: 10, Budget: -15, Environment: 5}},
			},
		},
	},
	"Education": {
		{
			ID:          301,
			Title:       "School Infrastructure",
			Description: "How will you improve educational facilities?",
			Options: []ChallengeOption{
				{ID: 1, Text: "Build a new school with modern amenities", Impact: Impact{Development: 20, Budget: -25, Environment: -5}},
				{ID: 2, Text: "Renovate existing buildings and add digital resources", Impact: Impact{Development: 15, Budget: -15, Environment: 5}},
				{ID: 3, Text: "Create community learning centers", Impact: Impact{Development: 10, Budget: -10, Environment: 10}},
			},
		},
	},
	"Water Supply": {
		{
			ID:          401,
			Title:       "Water Source",
			Description: "What primary water source will you develop?",
			Options: []ChallengeOption{
				{ID: 1, Text: "Dig deep borewells with electric pumps", Impact: Impact{Development: 15, Budget: -15, Environment: -10}},
				{ID: 2, Text: "Construct rainwater harvesting systems", Impact: Impact{Development: 10, Budget: -10, Environment: 20}},
				{ID: 3, Text: "Build a water treatment plant for the nearby river", Impact: Impact{Development: 20, Budget: -25, Environment: 5}},
			},
		},
	},
	"Rural Roads": {
		{
			ID:          501,
			Title:       "Road Material",
			Description: "What type of road surface will you use?",
			Options: []ChallengeOption{
				{ID: 1, Text: "Concrete roads for durability", Impact: Impact{Development: 20, Budget: -25, Environment: -10}},
				{ID: 2, Text: "Asphalt with recycled materials", Impact: Impact{Development: 15, Budget: -15, Environment: 0}},
				{ID: 3, Text: "Compacted gravel with local materials", Impact: Impact{Development: 10, Budget: -10, Environment: 10}},
			},
		},
	},
}

var defaultChallenges = []Challenge{
	{
		ID:          601,
		Title:       "Project Approach",
		Description: "How will you implement this development project?",
		Options: []ChallengeOption{
			{ID: 1, Text: "Rapid implementation with maximum resources", Impact: Impact{Development: 20, Budget: -20, Environment: -10}},
			{ID: 2, Text: "Balanced approach with community involvement", Impact: Impact{Development: 15, Budget: -10, Environment: 5}},
			{ID: 3, Text: "Slow, sustainable implementation", Impact: Impact{Development: 10, Budget: -5, Environment: 15}},
		},
	},
}

// ChallengesFor returns the fixed challenge sequence for a sector: the
// base challenges followed by the sector-specific ones, or a default
// single challenge for unknown sectors.
func ChallengesFor(sector string) []Challenge {
	extra, ok := sectorChallenges[sector]
	if !ok {
		extra = defaultChallenges
	}
	out := make([]Challenge, 0, len(baseChallenges)+len(extra))
	out = append(out, baseChallenges...)
	out = append(out, extra...)
	return out
}
