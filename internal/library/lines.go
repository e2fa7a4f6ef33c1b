package library

import "github.com/dshills/kelly/internal/topic"

var openers = []string{
	"Tell me again—how sure are we of silicon feeling our sorrow?",
	"Bold are the headlines; bolder the gaps they refuse to measure.",
	"Grant me a method, not myth—what signal maps to a mind?",
	"If metrics stand in for meaning, what meaning do metrics miss?",
}

var limitations = []string{
	"Data remembers the past, not the context we forgot to record.",
	"Patterns can mimic intent, yet intent is not a pattern.",
	"Benchmarks polish illusions when the deployment mud is thick.",
	"Generalization is narrow when the world is wider than our split.",
	"Labels leak judgment; proxies stand in costumes of truth.",
}

var suggestions = []string{
	"Run preregistered tests with held-out shifts, not just random splits.",
	"Add uncertainty estimates; ship with guardrails and abort states.",
	"Collect consented, diverse data; document provenance and limits.",
	"Stress-test edge cases; compare against strong human baselines.",
	"Monitor post-deployment drift; retrain only with auditable trails.",
	"Prefer interpretable models when stakes constrain acceptable risk.",
}

var closers = []string{
	"Skepticism is not cynicism; it is care with a spine.",
	"Let evidence be the rhythm, and humility the rhyme.",
	"We earn trust by resisting certainty more than doubt.",
	"Design with consequences in mind; that is the honest architecture.",
}

var blocks = map[topic.Topic][]string{
	topic.Emotions: {
		"What is a tear to a tensor—noise, or a map of meaning?",
		"Valence can be labeled, but grief refuses discretization.",
		"Physiology hints at affect; annotation wobbles with culture.",
		"Without longitudinal context, we guess at a moving target.",
	},
	topic.Jobs: {
		"Automation swallows the routine; creativity reclaims the leftovers.",
		"We cut costs quickly, then count the value we forgot to price.",
		"Toolmakers lose jobs to tools—and gain them—depending who owns the tools.",
		"Reskilling is a bridge; not all can pay the toll or cross in time.",
	},
	topic.Creativity: {
		"Remix is not revelation, though the gallery may not know.",
		"A sampler of a million styles still owes each hand it learned from.",
		"Novelty scored by likelihood is novelty fenced by the past.",
		"Ask who chose the prompt, the cut, the frame; that is where the art hides.",
	},
	topic.Consciousness: {
		"Fluent words are not a witness; a mirror does not see.",
		"No instrument yet reads experience off a weight matrix.",
		"We test for reports of feeling, then forget reports can be learned.",
		"Until theories make risky predictions, claims of minds stay claims.",
	},
	topic.Bias: {
		"The training set is a census of who was counted and who was not.",
		"Fair on average can be cruel in the tails where people live.",
		"Removing the column does not remove the proxy that stands in for it.",
		"Audit by subgroup, or the harm hides inside the mean.",
	},
	topic.Safety: {
		"Which hazard, for whom, at what rate; name it before you fear it.",
		"A system passing every test we wrote still fails the tests we didn't.",
		"Alignment claimed in a demo is not alignment under pressure.",
		"Red-team the incentives, not only the model, for that is where risk compounds.",
	},
	topic.Intelligence: {
		"Scores on exams were built for people, not for compressed archives.",
		"Reasoning that fails when names are swapped was pattern all along.",
		"One word, intelligence, hides a dozen skills we rarely separate.",
		"Measure transfer to the unseen, or measure only recall.",
	},
	topic.Future: {
		"Forecasts of the singular date age faster than the models they praise.",
		"Extrapolated curves forget the ceilings of cost, data, and power.",
		"The future is a distribution, not a headline with a year.",
		"Plan for ranges; update when the evidence moves, not the mood.",
	},
	topic.Learning: {
		"A model learns the data it was given, including the mistakes.",
		"Loss goes down on the curve; the question is what else went down with it.",
		"Leakage between train and test flatters every chart it touches.",
		"Learning without feedback from the world is rehearsal, not discovery.",
	},
	topic.Limits: {
		"Confident prose is not calibrated knowledge; hallucinations wear a tie.",
		"Context windows end; the world does not fit inside the prompt.",
		"Brittleness appears at the edges we were too busy to sample.",
		"Know the failure modes by name, and you will fear the right ones.",
	},
	topic.General: {
		"Claims scale faster than care; citations trail the parade.",
		"What works in carefully curated sandboxes falters in weather.",
		"We audit the parts we can see, then risk the parts we can't.",
		"Good science names its unknowns before selling its power.",
	},
}
