// Package themes assigns categorical tags to posts by deterministic keyword
// matching. Predictability matters more than coverage here: the tags feed
// user-facing conversation suggestions, so an auditable table beats a
// learned classifier.
package themes

// themeKeywords maps theme name to the keywords and phrases that trigger it.
// Read-only after init; safe for unsynchronized concurrent reads.
var themeKeywords = map[string][]string{
	"ai_agents": {
		"ai", "ai agent", "ai agents", "llm", "gpt", "claude", "chatgpt",
		"artificial intelligence", "machine learning", "ml", "neural network",
	},
	"shipping_quality": {
		"ship", "shipping", "deploy", "deployment", "launch", "release",
		"quality", "testing", "qa", "bug", "fix", "build",
	},
	"product_experiments": {
		"experiment", "a/b test", "feature flag", "mvp", "prototype",
		"user research", "product", "feedback", "iterate", "validation",
	},
	"fundraising": {
		"fundraising", "funding", "investor", "series a", "series b", "seed",
		"vc", "venture capital", "pitch", "valuation", "raise",
	},
	"hiring": {
		"hiring", "recruiting", "job", "position", "team", "engineer",
		"developer", "designer", "pm", "product manager", "we're hiring",
	},
	"open_source": {
		"open source", "oss", "github", "contribution", "maintainer",
		"pull request", "pr", "commit", "repository", "license",
	},
	"design_systems": {
		"design system", "ui", "ux", "user interface", "user experience",
		"component library", "figma", "design", "prototype", "wireframe",
	},
	"sports": {
		"football", "basketball", "soccer", "baseball", "tennis", "golf",
		"olympics", "championship", "game", "match", "season", "playoffs",
	},
	"crypto": {
		"bitcoin", "ethereum", "crypto", "cryptocurrency", "blockchain",
		"defi", "nft", "web3", "dao", "smart contract",
	},
	"career": {
		"career", "job search", "interview", "resume", "linkedin",
		"networking", "promotion", "skills", "growth", "mentor",
	},
}
