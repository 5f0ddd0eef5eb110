package classify

import (
	"testing"

	"askfolio/internal/knowledge"
)

// =============================================================================
// RESERVED TOKEN TESTS
// =============================================================================

func TestClassify_ReservedTokens(t *testing.T) {
	c := New(DefaultConfig())

	cases := map[string]knowledge.Topic{
		"project":    knowledge.TopicProjects,
		"projects":   knowledge.TopicProjects,
		"skill":      knowledge.TopicSkills,
		"skills":     knowledge.TopicSkills,
		"experience": knowledge.TopicExperience,
		"work":       knowledge.TopicExperience,
		"job":        knowledge.TopicExperience,
		"  Skills  ": knowledge.TopicSkills, // normalization applies first
	}

	for input, want := range cases {
		got, ok := c.Classify(input)
		if !ok {
			t.Errorf("Classify(%q): expected match, got miss", input)
			continue
		}
		if got != want {
			t.Errorf("Classify(%q) = %s, want %s", input, got, want)
		}
	}
}

// =============================================================================
// PATTERN SCAN TESTS
// =============================================================================

func TestClassify_PatternPrecedence(t *testing.T) {
	c := New(DefaultConfig())

	// The scan order is skills, projects, experience, education, resume.
	// A question hitting both the projects and experience rule sets must
	// resolve to projects, the earlier rule.
	got, ok := c.Classify("tell me about his experience building projects")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != knowledge.TopicProjects {
		t.Errorf("precedence: got %s, want %s", got, knowledge.TopicProjects)
	}

	// Skills outranks everything.
	got, ok = c.Classify("what skill does he use in his projects")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != knowledge.TopicSkills {
		t.Errorf("precedence: got %s, want %s", got, knowledge.TopicSkills)
	}
}

func TestClassify_Phrases(t *testing.T) {
	c := New(DefaultConfig())

	cases := map[string]knowledge.Topic{
		"what can he do":                 knowledge.TopicSkills,
		"show me his tech stack":         knowledge.TopicSkills,
		"what has he built":              knowledge.TopicProjects,
		"where does he work":             knowledge.TopicExperience,
		"tell me about his career":       knowledge.TopicExperience,
		"where did he study":             knowledge.TopicEducation,
		"does he have a degree":          knowledge.TopicEducation,
		"can i download his resume":      knowledge.TopicResume,
		"is there a cv available":        knowledge.TopicResume,
		"what is his cgpa":               knowledge.TopicEducation,
	}

	for input, want := range cases {
		got, ok := c.Classify(input)
		if !ok {
			t.Errorf("Classify(%q): expected %s, got miss", input, want)
			continue
		}
		if got != want {
			t.Errorf("Classify(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestClassify_Miss(t *testing.T) {
	c := New(DefaultConfig())

	for _, input := range []string{
		"what's the weather today",
		"tell me a joke",
		"",
		"   ",
	} {
		if got, ok := c.Classify(input); ok {
			t.Errorf("Classify(%q): expected miss, got %s", input, got)
		}
	}
}

// =============================================================================
// TYPO TOLERANCE TESTS
// =============================================================================

func TestClassify_TypoVariants(t *testing.T) {
	c := New(DefaultConfig())

	cases := map[string]knowledge.Topic{
		"tell me about your expereince": knowledge.TopicExperience,
		"his experiance please":         knowledge.TopicExperience,
		"list his skilz":                knowledge.TopicSkills,
		"any cool projet":               knowledge.TopicProjects,
	}

	for input, want := range cases {
		got, ok := c.Classify(input)
		if !ok {
			t.Errorf("Classify(%q): expected %s via typo map, got miss", input, want)
			continue
		}
		if got != want {
			t.Errorf("Classify(%q) = %s, want %s", input, got, want)
		}
	}
}

// =============================================================================
// GREETING GUARD TESTS
// =============================================================================

func TestClassify_GreetingGuard(t *testing.T) {
	c := New(DefaultConfig())

	// Bare greetings classify as greeting.
	for _, input := range []string{"hello", "hi", "hey", "good morning"} {
		got, ok := c.Classify(input)
		if !ok || got != knowledge.TopicGreeting {
			t.Errorf("Classify(%q) = %s, %v; want greeting", input, got, ok)
		}
	}

	// A greeting carrying a domain keyword is a portfolio question.
	got, ok := c.Classify("hi, what are your skills")
	if !ok || got != knowledge.TopicSkills {
		t.Errorf("Classify(greeting+skills) = %s, %v; want skills", got, ok)
	}

	got, ok = c.Classify("hello sourav")
	if ok {
		t.Errorf("greeting naming the subject should miss locally, got %s", got)
	}
}

// =============================================================================
// ANALYTICAL CARVE-OUT TESTS
// =============================================================================

func TestClassify_AnalyticalCarveOut(t *testing.T) {
	c := New(DefaultConfig())

	// Quantifying questions miss locally even with a domain keyword, so
	// the backend computes the answer.
	for _, input := range []string{
		"how many skills does he have",
		"number of projects",
		"what is his best project",
		"what can he help with",
	} {
		if got, ok := c.Classify(input); ok {
			t.Errorf("Classify(%q): expected analytical miss, got %s", input, got)
		}
	}

	// Reserved exact tokens still win: they are unambiguous.
	if got, ok := c.Classify("skills"); !ok || got != knowledge.TopicSkills {
		t.Errorf("reserved token lost to carve-out: %s, %v", got, ok)
	}
}

func TestClassify_AnalyticalRoutingDisabled(t *testing.T) {
	c := New(Config{AnalyticalRouting: false})

	got, ok := c.Classify("how many skills does he have")
	if !ok || got != knowledge.TopicSkills {
		t.Errorf("with routing disabled, want local skills match, got %s, %v", got, ok)
	}
}

// =============================================================================
// BUCKET GUESS TESTS
// =============================================================================

func TestGuessBucket(t *testing.T) {
	c := New(DefaultConfig())

	cases := map[string]knowledge.Topic{
		"where is his resume":       knowledge.TopicResume,
		"college and degree":        knowledge.TopicEducation,
		"which company is current":  knowledge.TopicCurrentCompany,
		"what company did he join":  knowledge.TopicFirstCompany,
		"skill related":             knowledge.TopicSkills,
		"project related":           knowledge.TopicProjects,
		"experience related":        knowledge.TopicExperience,
	}

	for input, want := range cases {
		got, ok := c.GuessBucket(input)
		if !ok {
			t.Errorf("GuessBucket(%q): expected %s, got miss", input, want)
			continue
		}
		if got != want {
			t.Errorf("GuessBucket(%q) = %s, want %s", input, got, want)
		}
	}

	if got, ok := c.GuessBucket("completely unrelated"); ok {
		t.Errorf("GuessBucket(unrelated): expected miss, got %s", got)
	}
}
