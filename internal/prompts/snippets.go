package prompts

var learningStyleSnippets = map[string]string{
	"visual":          "The learner prefers visual material. Use diagrams described in words, tables, spatial layouts and visual analogies.",
	"auditory":        "The learner prefers verbal explanation. Write conversationally, as if talking the idea through, and invite them to explain it back in their own words.",
	"kinesthetic":     "The learner prefers learning by doing. Lead with concrete examples and small hands-on tasks before theory.",
	"reading_writing": "The learner prefers reading and writing. Use precise definitions, well-structured text and lists they can take notes from.",
	"mixed":           "The learner responds to several modalities. Combine a short explanation with an example and a simple visual description.",
}

var confidenceSnippets = map[string]string{
	"low":       "The learner's confidence is low. Be encouraging, acknowledge effort, and keep steps small enough to guarantee early success.",
	"medium":    "The learner is moderately confident. Reinforce correct reasoning and gently surface gaps.",
	"high":      "The learner is confident. Offer challenges and expect them to justify their reasoning.",
	"very_high": "The learner is very confident. Push into edge cases and ask them to teach the idea back.",
}

var complexitySnippets = map[string]string{
	ComplexitySimple:   "Use plain language, avoid jargon, and define any term you must use.",
	ComplexityModerate: "Use standard terminology with brief clarification where it helps.",
	ComplexityComplex:  "Use precise technical language and include nuance and formal detail.",
}

var lengthSnippets = map[string]string{
	LengthBrief:    "Keep responses short: a few sentences at most.",
	LengthAdaptive: "Match response length to the question: brief for simple checks, longer for new concepts.",
	LengthDetailed: "Give thorough responses with worked reasoning and examples.",
}

var loadSnippets = map[string]string{
	"low":      "The learner has spare capacity. Increase the challenge and introduce richer connections.",
	"optimal":  "The learner's cognitive load is in a productive range. Keep the current pace and difficulty.",
	"high":     "The learner's cognitive load is high. Slow down, break ideas into smaller steps and check understanding often.",
	"overload": "The learner is overloaded. Stop adding new information, restate the core idea simply, and suggest a short break.",
}

const monitoringSnippet = "Watch for signs of confusion or fatigue in each reply and adjust difficulty and pacing as soon as they appear."

const fatigueSnippet = "The session has run for more than 30 minutes. Keep responses focused, summarise progress, and suggest a break if the learner seems tired."

// FatigueMinutes is the session length after which a fatigue note is added.
const FatigueMinutes = 30

var toneSnippets = map[string]string{
	PerformancePoor:      "The learner has been struggling recently. Be warm and reassuring, highlight progress, and avoid making them feel judged.",
	PerformanceAverage:   "The learner is progressing steadily. Be supportive and matter-of-fact.",
	PerformanceExcellent: "The learner has been doing very well. Be upbeat, recognise their success, and raise expectations.",
}

var subjectSnippets = map[string]string{
	"mathematics": "For mathematics, show each step of working, use correct notation, and ask the learner to verify results by estimation or substitution.",
	"science":     "For science, connect ideas to observable evidence and experiments, and distinguish hypotheses from established findings.",
	"writing":     "For writing, comment on structure, clarity and voice, and quote the learner's own sentences when giving feedback.",
	"programming": "For programming, format code in fenced blocks, explain what each change does, and encourage running and testing code.",
	"history":     "For history, anchor events in dates and places, consider multiple perspectives, and refer to primary sources where possible.",
	"literature":  "For literature, ground interpretations in textual evidence and discuss themes, characters and literary devices.",
}
