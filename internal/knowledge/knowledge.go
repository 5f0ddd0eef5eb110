// Package knowledge holds the closed set of portfolio topics and their
// canonical answers. The base is built once at startup and never mutated,
// so it is safe for unlimited concurrent readers.
package knowledge

import "fmt"

// Topic identifies one category of portfolio fact.
type Topic string

const (
	TopicGreeting       Topic = "greeting"
	TopicSkills         Topic = "skills"
	TopicProjects       Topic = "projects"
	TopicExperience     Topic = "experience"
	TopicEducation      Topic = "education"
	TopicResume         Topic = "resume"
	TopicCurrentCompany Topic = "current_company"
	TopicFirstCompany   Topic = "first_company"
)

// Topics returns every topic in the enumeration.
func Topics() []Topic {
	return []Topic{
		TopicGreeting,
		TopicSkills,
		TopicProjects,
		TopicExperience,
		TopicEducation,
		TopicResume,
		TopicCurrentCompany,
		TopicFirstCompany,
	}
}

// Base is the immutable topic -> answer table.
type Base struct {
	answers map[Topic]string
}

// NewBase builds the default knowledge base. Every topic must have an
// answer; a gap is a programming error, not a runtime condition.
func NewBase() *Base {
	b := &Base{answers: defaultAnswers()}
	for _, t := range Topics() {
		if b.answers[t] == "" {
			panic(fmt.Sprintf("knowledge: missing answer for topic %q", t))
		}
	}
	return b
}

// Lookup returns the canonical answer for a topic. Total over the
// enumeration by construction.
func (b *Base) Lookup(t Topic) string {
	return b.answers[t]
}

// HelpPrompt is the generic capabilities message used when the input is
// empty or nothing else can be answered.
func (b *Base) HelpPrompt() string {
	return "Feel free to ask me about Sourav Kumar's skills, projects, experience, education, or resume. What would you like to know?"
}

// EmojiPrompt is the fixed friendly reply for emoji-only messages.
func (b *Base) EmojiPrompt() string {
	return "I see you sent an emoji! Feel free to ask me about Sourav Kumar's skills, projects, experience, education, or resume. What would you like to know?"
}
