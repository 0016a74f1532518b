package textmatch

import (
	"strings"
	"unicode/utf8"
)

// Method names the tier that produced a match.
type Method string

const (
	MethodNone            Method = ""
	MethodExact           Method = "exact"
	MethodNormalized      Method = "normalized"
	MethodFuzzy           Method = "fuzzy"
	MethodPartialFuzzy    Method = "partial_fuzzy"
	MethodSingleWordFuzzy Method = "single_word_fuzzy"
)

// DefaultThreshold tolerates common typing mistakes without firing on unrelated short words.
const DefaultThreshold = 0.6

const (
	normalizedScore        = 0.95
	windowFactor           = 0.9
	partialThresholdFactor = 0.85
	partialMinRatio        = 0.6
	partialFactor          = 0.8
	singleWordFactor       = 0.85
)

// Result is the outcome of matching one keyword against an input phrase.
type Result struct {
	Matched bool
	Score   float64
	Method  Method
}

// Match tries five strategies in order and stops at the first one that succeeds:
// exact substring, diacritic-folded substring, windowed phrase similarity,
// partial multi-word match and single-word similarity.
func Match(input, keyword string, threshold float64) Result {
	in, kw := Canonical(input), Canonical(keyword)

	if strings.Contains(in, kw) {
		return Result{Matched: true, Score: 1, Method: MethodExact}
	}

	foldedIn, foldedKw := Fold(in), Fold(kw)
	if strings.Contains(foldedIn, foldedKw) {
		return Result{Matched: true, Score: normalizedScore, Method: MethodNormalized}
	}

	inWords := strings.Fields(in)
	kwWords := strings.Fields(kw)
	if len(inWords) == 0 || len(kwWords) == 0 {
		return Result{}
	}
	foldedInWords := make([]string, len(inWords))
	for i, w := range inWords {
		foldedInWords[i] = Fold(w)
	}

	if best := bestWindow(inWords, foldedInWords, kw, foldedKw, len(kwWords)); best >= threshold {
		return Result{Matched: true, Score: best * windowFactor, Method: MethodFuzzy}
	}

	if len(kwWords) > 1 {
		if r, ok := partialMatch(inWords, foldedInWords, kwWords, threshold*partialThresholdFactor); ok {
			return r
		}
		return Result{}
	}

	foldedWord := Fold(kwWords[0])
	for i, w := range inWords {
		if s := max(Similarity(w, kwWords[0]), Similarity(foldedInWords[i], foldedWord)); s >= threshold {
			return Result{Matched: true, Score: s * singleWordFactor, Method: MethodSingleWordFuzzy}
		}
	}
	return Result{}
}

func bestWindow(inWords, foldedInWords []string, kw, foldedKw string, size int) float64 {
	best := 0.0
	for i := 0; i+size <= len(inWords); i++ {
		window := strings.Join(inWords[i:i+size], " ")
		foldedWindow := strings.Join(foldedInWords[i:i+size], " ")
		best = max(best, Similarity(window, kw), Similarity(foldedWindow, foldedKw))
	}
	return best
}

func partialMatch(inWords, foldedInWords, kwWords []string, relaxed float64) (Result, bool) {
	matched := 0
	total := 0.0
	for _, kwWord := range kwWords {
		foldedKwWord := Fold(kwWord)
		best := 0.0
		for i, w := range inWords {
			best = max(best, Similarity(w, kwWord), Similarity(foldedInWords[i], foldedKwWord))
		}
		if best >= relaxed {
			matched++
			total += best
		}
	}

	ratio := float64(matched) / float64(len(kwWords))
	if matched == 0 || ratio < partialMinRatio {
		return Result{}, false
	}
	avg := total / float64(matched)
	return Result{Matched: true, Score: avg * partialFactor * ratio, Method: MethodPartialFuzzy}, true
}

// Hit is the best keyword found by Best.
type Hit struct {
	Keyword string
	Result
}

// Best returns the highest-scoring keyword. On equal scores the longer keyword wins,
// then the earlier one.
func Best(input string, keywords []string, threshold float64) (Hit, bool) {
	var best Hit
	for _, kw := range keywords {
		r := Match(input, kw, threshold)
		if !r.Matched {
			continue
		}
		if r.Score > best.Score || (r.Score == best.Score && utf8.RuneCountInString(kw) > utf8.RuneCountInString(best.Keyword)) {
			best = Hit{Keyword: kw, Result: r}
		}
	}
	return best, best.Matched
}
