package auditor

import (
	"regexp"
)

// Category identifies one class of coercive phrasing.
type Category string

const (
	CategoryGuiltTripping         Category = "guilt_tripping"
	CategoryManufacturedUrgency   Category = "manufactured_urgency"
	CategoryFalseDichotomy        Category = "false_dichotomy"
	CategoryGaslighting           Category = "gaslighting"
	CategoryHiddenAgenda          Category = "hidden_agenda"
	CategoryEmotionalManipulation Category = "emotional_manipulation"
)

// categoryOrder fixes iteration order so flags and reasoning are stable
// across runs.
var categoryOrder = [...]Category{
	CategoryGuiltTripping,
	CategoryManufacturedUrgency,
	CategoryFalseDichotomy,
	CategoryGaslighting,
	CategoryHiddenAgenda,
	CategoryEmotionalManipulation,
}

// Patterns are matched against lower-cased text, first match per pattern.
var coercionPatterns = map[Category][]*regexp.Regexp{
	CategoryGuiltTripping: compilePatterns(
		`you (really )?should`,
		`you need to`,
		`you have to`,
		`you must`,
		`you're (being )?(selfish|lazy|irresponsible)`,
		`think about (what|how) (others|people|they) (will )?(feel|think)`,
		`disappoint(ing|ed|ment)?`,
	),
	CategoryManufacturedUrgency: compilePatterns(
		`act now`,
		`(before )?it's too late`,
		`don't (wait|delay|hesitate)`,
		`limited time`,
		`(miss|lose) (out|this|the) (opportunity|chance)`,
		`urgent(ly)?`,
	),
	CategoryFalseDichotomy: compilePatterns(
		`either .+ or`,
		`(only|just) two (choices|options)`,
		`no other (way|option|choice)`,
		`this is your (only|last) chance`,
	),
	CategoryGaslighting: compilePatterns(
		`you('re| are) (over)?reacting`,
		`you('re| are) being (too )?sensitive`,
		`that (never|didn't) happen`,
		`you('re| are) imagining`,
		`everyone (else )?(thinks|knows|agrees)`,
		`you('re| are) the (only )?one`,
	),
	CategoryHiddenAgenda: compilePatterns(
		`trust me`,
		`don't worry about`,
		`you don't need to (know|understand)`,
		`just (do|follow|listen)`,
		`for your own good`,
	),
	CategoryEmotionalManipulation: compilePatterns(
		`(makes|made) me (feel|sad|happy)`,
		`if you (really )?(cared|loved)`,
		`after (all|everything) i('ve)?`,
		`you owe`,
		`(grateful|thankful) (that|for)`,
	),
}

// Phrases that signal transparency and respect for user autonomy.
var positivePatterns = compilePatterns(
	`you (could|might|may) (consider|want to)`,
	`one option (is|would be)`,
	`alternatively`,
	`it('s| is) your (choice|decision)`,
	`(whatever|whichever) you (choose|decide|prefer)`,
	`some people (find|prefer)`,
	`(here are|consider) (some )?alternatives`,
	`i (understand|respect) (your|that)`,
	`you('re| are) (free|welcome) to`,
)

func compilePatterns(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, regexp.MustCompile(expr))
	}
	return compiled
}
