// Package classify maps a normalized visitor question to zero-or-one
// knowledge topic. Matching is a ranked list of (patterns, topic) rules
// evaluated in a fixed precedence order, so the tie-break behavior is data,
// not control flow. A miss is a normal outcome, never an error.
package classify

import (
	"strings"

	"askfolio/internal/knowledge"
)

// Config holds classifier settings.
type Config struct {
	// AnalyticalRouting forces quantifying or comparative questions to
	// miss locally so the generative backend answers them. Local answers
	// are canonical facts, not computed or subjective ones.
	AnalyticalRouting bool
}

// DefaultConfig returns the settings used in production.
func DefaultConfig() Config {
	return Config{AnalyticalRouting: true}
}

// rule binds one topic to its registered phrases. Rules are scanned in
// slice order; the first rule with any substring hit wins.
type rule struct {
	topic    knowledge.Topic
	patterns []string
}

// Classifier performs keyword and phrase matching against the closed
// topic set. Immutable after construction.
type Classifier struct {
	cfg        Config
	reserved   map[string]knowledge.Topic
	rules      []rule
	typos      map[knowledge.Topic][]string
	greetings  []string
	domain     []string
	analytical []string
}

// New creates a classifier with the registered pattern tables.
func New(cfg Config) *Classifier {
	return &Classifier{
		cfg: cfg,

		// Short inputs are ambiguous under substring matching ("job" is a
		// substring of many sentences), so exact equality is checked first.
		reserved: map[string]knowledge.Topic{
			"project":    knowledge.TopicProjects,
			"projects":   knowledge.TopicProjects,
			"skill":      knowledge.TopicSkills,
			"skills":     knowledge.TopicSkills,
			"experience": knowledge.TopicExperience,
			"work":       knowledge.TopicExperience,
			"job":        knowledge.TopicExperience,
		},

		// Precedence order: skills, projects, experience, education,
		// resume. A question hitting several rule sets resolves to the
		// first one scanned.
		rules: []rule{
			{knowledge.TopicSkills, []string{
				"skill", "technology", "technologies", "tech stack",
				"what can he do", "what does he know", "what technologies",
				"tell me about skills", "show me skills",
				"his skills", "technical skills", "tech skills",
			}},
			{knowledge.TopicProjects, []string{
				"project", "built", "created", "portfolio",
				"tell me about projects", "show me projects",
				"his projects", "featured projects",
			}},
			{knowledge.TopicExperience, []string{
				"experience", "work", "job", "employment", "career",
				"where does he work", "which company", "current company",
				"work history", "employment history",
				"professional experience", "react experience",
				"development experience",
			}},
			{knowledge.TopicEducation, []string{
				"education", "degree", "qualification", "university",
				"college", "btech", "b.tech", "graduation",
				"where did he study", "his education", "cgpa",
			}},
			{knowledge.TopicResume, []string{
				"resume", "cv", "curriculum vitae", "download resume",
				"get resume",
			}},
		},

		typos: map[knowledge.Topic][]string{
			knowledge.TopicExperience: {
				"expereince", "experiance", "expirience", "experence", "expierence",
			},
			knowledge.TopicSkills:   {"skil", "skils", "skilz"},
			knowledge.TopicProjects: {"projct", "projet", "projec"},
		},

		greetings: []string{
			"hi", "hello", "hey", "greetings",
			"good morning", "good afternoon", "good evening",
		},

		// A greeting that also mentions any of these is a portfolio
		// question, not a greeting.
		domain: []string{
			"skill", "project", "experience", "education", "resume",
			"sourav", "portfolio",
		},

		analytical: []string{
			"how many", "number of", "count of", "total",
			"best", "worst", "favorite", "compare", "versus", " vs ",
			"help with", "how long ago", "calculate", "how much",
		},
	}
}

// Normalize lowercases and trims a raw question for matching.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Classify maps a normalized question to a topic. The boolean is false
// when no rule matched and the caller should consult the backend.
func (c *Classifier) Classify(q string) (knowledge.Topic, bool) {
	q = Normalize(q)
	if q == "" {
		return "", false
	}

	// 1. Exact single-word match bypasses pattern scanning.
	if t, ok := c.reserved[q]; ok {
		return t, true
	}

	// 2. Analytical carve-out: quantifying or comparative questions go to
	// the backend even when they contain a domain keyword.
	if c.cfg.AnalyticalRouting && c.isAnalytical(q) {
		return "", false
	}

	// 3. Pattern scan in precedence order.
	for _, r := range c.rules {
		for _, p := range r.patterns {
			if strings.Contains(q, p) {
				return r.topic, true
			}
		}
	}

	// 4. Typo-tolerant retry.
	for t, variants := range c.typos {
		for _, v := range variants {
			if strings.Contains(q, v) {
				return t, true
			}
		}
	}

	// 5. Greeting guard: greetings only count when the question carries no
	// portfolio keyword.
	if c.isGreeting(q) && !c.hasDomainKeyword(q) {
		return knowledge.TopicGreeting, true
	}

	return "", false
}

func (c *Classifier) isAnalytical(q string) bool {
	for _, a := range c.analytical {
		if strings.Contains(q, a) {
			return true
		}
	}
	return false
}

func (c *Classifier) isGreeting(q string) bool {
	for _, g := range c.greetings {
		if q == g || strings.HasPrefix(q, g+" ") || strings.HasPrefix(q, g+",") {
			return true
		}
	}
	return false
}

func (c *Classifier) hasDomainKeyword(q string) bool {
	for _, w := range c.domain {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}

// GuessBucket inspects a raw question for coarse keyword buckets. It is
// the last matching step of the degraded fallback path and deliberately
// looser than Classify: no precedence rules, no analytical carve-out.
func (c *Classifier) GuessBucket(raw string) (knowledge.Topic, bool) {
	q := Normalize(raw)
	switch {
	case strings.Contains(q, "resume"), strings.Contains(q, "cv"):
		return knowledge.TopicResume, true
	case strings.Contains(q, "education"), strings.Contains(q, "degree"),
		strings.Contains(q, "college"), strings.Contains(q, "university"),
		strings.Contains(q, "btech"), strings.Contains(q, "graduation"):
		return knowledge.TopicEducation, true
	case strings.Contains(q, "company"):
		if strings.Contains(q, "current") {
			return knowledge.TopicCurrentCompany, true
		}
		return knowledge.TopicFirstCompany, true
	case strings.Contains(q, "skill"):
		return knowledge.TopicSkills, true
	case strings.Contains(q, "project"):
		return knowledge.TopicProjects, true
	case strings.Contains(q, "experience"):
		return knowledge.TopicExperience, true
	}
	return "", false
}
