package game

// QuizQuestion is one multiple-choice question. Exactly one option is
// correct; the explanation is revealed after the answer locks.
type QuizQuestion struct {
	ID          int          `json:"id"`
	Text        string       `json:"text"`
	Options     []QuizOption `json:"options"`
	Explanation string       `json:"explanation"`
}

type QuizOption struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"-"`
}

// quizDrawCount is how many questions a session plays.
const quizDrawCount = 5

var generalQuestions = []QuizQuestion{
	{
		ID:   1,
		Text: "Which of the following is NOT one of the three pillars of sustainability?",
		Options: []QuizOption{
			{ID: "a", Text: "Environmental protection"},
			{ID: "b", Text: "Economic development"},
			{ID: "c", Text: "Social equity"},
			{ID: "d", Text: "Technological advancement", Correct: true},
		},
		Explanation: "The three pillars of sustainability are environmental protection, economic development, and social equity. While technology plays a role in sustainability, it is not one of the core pillars.",
	},
	{
		ID:   2,
		Text: "What does the term 'sustainable development' mean?",
		Options: []QuizOption{
			{ID: "a", Text: "Development that meets the needs of the present without compromising future generations", Correct: true},
			{ID: "b", Text: "Development focused exclusively on environmental protection"},
			{ID: "c", Text: "Development that maximizes economic growth regardless of other factors"},
			{ID: "d", Text: "Development that occurs only in rural areas"},
		},
		Explanation: "Sustainable development is development that meets the needs of the present without compromising the ability of future generations to meet their own needs, as defined by the Brundtland Commission.",
	},
}

var sectorQuestions = map[string][]QuizQuestion{
	"Agriculture": {
		{
			ID:   101,
			Text: "Which agricultural practice helps conserve soil moisture and reduce erosion?",
			Options: []QuizOption{
				{ID: "a", Text: "Deep plowing"},
				{ID: "b", Text: "Monocropping"},
				{ID: "c", Text: "Mulching", Correct: true},
				{ID: "d", Text: "Excessive irrigation"},
			},
			Explanation: "Mulching involves covering the soil surface with organic materials, which helps retain moisture, suppress weeds, and reduce soil erosion.",
		},
		{
			ID:   102,
			Text: "What is the primary benefit of crop rotation in sustainable agriculture?",
			Options: []QuizOption{
				{ID: "a", Text: "It reduces the need for labor"},
				{ID: "b", Text: "It improves soil health and reduces pest problems", Correct: true},
				{ID: "c", Text: "It increases the need for chemical fertilizers"},
				{ID: "d", Text: "It allows for year-round harvesting"},
			},
			Explanation: "Crop rotation involves growing different types of crops in the same area in sequential seasons, which helps maintain soil health, reduce pest and disease problems, and improve nutrient cycling.",
		},
	},
	"Health": {
		{
			ID:   201,
			Text: "Which of the following is a preventive healthcare strategy?",
			Options: []QuizOption{
				{ID: "a", Text: "Treating illnesses with antibiotics"},
				{ID: "b", Text: "Building hospitals for emergency care"},
				{ID: "c", Text: "Immunization programs", Correct: true},
				{ID: "d", Text: "Specialized surgical procedures"},
			},
			Explanation: "Immunization programs are a preventive healthcare strategy that aims to protect individuals from diseases before they occur, reducing the overall disease burden in communities.",
		},
		{
			ID:   202,
			Text: "What is the concept of 'One Health' focused on?",
			Options: []QuizOption{
				{ID: "a", Text: "Treating only the most critical patients"},
				{ID: "b", Text: "The interconnection between people, animals, plants, and environment", Correct: true},
				{ID: "c", Text: "Providing healthcare only to certain populations"},
				{ID: "d", Text: "Focusing on a single aspect of healthcare delivery"},
			},
			Explanation: "One Health is an approach that recognizes that the health of people is closely connected to the health of animals, plants, and our shared environment.",
		},
	},
	"Education": {
		{
			ID:   301,
			Text: "Which approach to education emphasizes learning through direct experience?",
			Options: []QuizOption{
				{ID: "a", Text: "Lecture-based learning"},
				{ID: "b", Text: "Rote memorization"},
				{ID: "c", Text: "Experiential learning", Correct: true},
				{ID: "d", Text: "Standardized testing"},
			},
			Explanation: "Experiential learning emphasizes learning through direct experience and reflection on that experience, rather than through traditional lecture formats or memorization.",
		},
		{
			ID:   302,
			Text: "What is a key benefit of inclusive education?",
			Options: []QuizOption{
				{ID: "a", Text: "It reduces education costs"},
				{ID: "b", Text: "It creates equal opportunities for all students regardless of abilities", Correct: true},
				{ID: "c", Text: "It simplifies the curriculum"},
				{ID: "d", Text: "It eliminates the need for specialized teachers"},
			},
			Explanation: "Inclusive education aims to ensure equal access and opportunities for all students regardless of their diverse abilities, backgrounds, or other characteristics.",
		},
	},
	"Water Supply": {
		{
			ID:   401,
			Text: "Which water conservation technique involves collecting rainfall from rooftops?",
			Options: []QuizOption{
				{ID: "a", Text: "Drip irrigation"},
				{ID: "b", Text: "Rainwater harvesting", Correct: true},
				{ID: "c", Text: "Wastewater treatment"},
				{ID: "d", Text: "Desalination"},
			},
			Explanation: "Rainwater harvesting is the collection and storage of rainwater for reuse on-site, rather than allowing it to run off. It is commonly collected from rooftops and stored in tanks.",
		},
		{
			ID:   402,
			Text: "What is the primary purpose of a water treatment plant?",
			Options: []QuizOption{
				{ID: "a", Text: "Generate hydroelectric power"},
				{ID: "b", Text: "Create artificial rain"},
				{ID: "c", Text: "Remove contaminants from water to make it safe for consumption", Correct: true},
				{ID: "d", Text: "Extract minerals from water for commercial use"},
			},
			Explanation: "Water treatment plants remove contaminants and undesirable components from water to make it safe for human consumption or return to the environment.",
		},
	},
	"Rural Roads": {
		{
			ID:   501,
			Text: "What is a key benefit of all-weather rural roads?",
			Options: []QuizOption{
				{ID: "a", Text: "They require less maintenance than urban roads"},
				{ID: "b", Text: "They provide year-round access to markets and services", Correct: true},
				{ID: "c", Text: "They eliminate the need for public transportation"},
				{ID: "d", Text: "They automatically reduce traffic congestion"},
			},
			Explanation: "All-weather rural roads are designed to remain accessible throughout the year regardless of weather conditions, ensuring continuous access to markets, healthcare facilities, schools, and other essential services.",
		},
		{
			ID:   502,
			Text: "Which road construction material is generally considered most environmentally sustainable?",
			Options: []QuizOption{
				{ID: "a", Text: "Traditional asphalt"},
				{ID: "b", Text: "Standard concrete"},
				{ID: "c", Text: "Pervious concrete", Correct: true},
				{ID: "d", Text: "Steel reinforcement"},
			},
			Explanation: "Pervious concrete allows water to pass through it, reducing runoff and allowing groundwater recharge, which is more environmentally sustainable than impervious surfaces like traditional asphalt or concrete.",
		},
	},
}

var defaultQuestions = []QuizQuestion{
	{
		ID:   601,
		Text: "What is a key principle of participatory development?",
		Options: []QuizOption{
			{ID: "a", Text: "Excluding local communities from decision-making"},
			{ID: "b", Text: "Involving local stakeholders in planning and implementation", Correct: true},
			{ID: "c", Text: "Prioritizing rapid development over local concerns"},
			{ID: "d", Text: "Implementing standardized solutions across all communities"},
		},
		Explanation: "Participatory development involves including local stakeholders in planning, implementation, and evaluation of development projects, ensuring their needs, knowledge, and preferences are considered.",
	},
	{
		ID:   602,
		Text: "What is the purpose of an Environmental Impact Assessment (EIA)?",
		Options: []QuizOption{
			{ID: "a", Text: "To evaluate the potential environmental effects of a proposed project", Correct: true},
			{ID: "b", Text: "To maximize economic returns from development projects"},
			{ID: "c", Text: "To bypass environmental regulations"},
			{ID: "d", Text: "To speed up project approval processes"},
		},
		Explanation: "An Environmental Impact Assessment is a process of evaluating the likely environmental impacts of a proposed project or development, considering both beneficial and adverse impacts.",
	},
}

// QuestionsFor returns the full question pool for a sector: the general
// questions plus the sector-specific pair (default pair for unknown
// sectors).
func QuestionsFor(sector string) []QuizQuestion {
	extra, ok := sectorQuestions[sector]
	if !ok {
		extra = defaultQuestions
	}
	out := make([]QuizQuestion, 0, len(generalQuestions)+len(extra))
	out = append(out, generalQuestions...)
	out = append(out, extra...)
	return out
}

// DrawQuestions samples up to five questions from the sector pool
// without replacement and in shuffled order.
func DrawQuestions(sector string, rng Rand) []QuizQuestion {
	pool := QuestionsFor(sector)
	drawn := make([]QuizQuestion, len(pool))
	copy(drawn, pool)
	rng.Shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})
	if len(drawn) > quizDrawCount {
		drawn = drawn[:quizDrawCount]
	}
	return drawn
}
