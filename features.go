package atbtag

import "strings"

// Feature dimensions are typed strings whose zero value "" means the tag
// does not mark that dimension. Absence is an ordinary outcome, never an
// error: every extractor is total over arbitrary input.

// Gender is the grammatical gender marked on a tag.
type Gender string

const (
	Masculine Gender = "Masculine"
	Feminine  Gender = "Feminine"
)

// Number is the grammatical number marked on a tag.
type Number string

const (
	Singular Number = "Singular"
	Dual     Number = "Dual"
	Plural   Number = "Plural"
)

// Mood is the verbal mood marked on an imperfective tag. SubjJussive
// covers the ambiguous "SJ" marker found on some annotated tags.
type Mood string

const (
	Indicative  Mood = "Indicative"
	Subjunctive Mood = "Subjunctive"
	Jussive     Mood = "Jussive"
	SubjJussive Mood = "Subj/Jussive"
)

// Definiteness is the definiteness status of a nominal tag.
type Definiteness string

const (
	Definite   Definiteness = "Definite"
	Indefinite Definiteness = "Indefinite"
)

// Aspect is the verbal aspect code. The value is the ATB prefix itself:
// PV (perfect), IV (imperfect) or CV (imperative).
type Aspect string

const (
	AspectPerfect    Aspect = "PV"
	AspectImperfect  Aspect = "IV"
	AspectImperative Aspect = "CV"
)

// Person is the grammatical person: 1, 2 or 3. Zero means unmarked.
type Person int

// containsAny builds a predicate that reports whether the tag contains
// any of the given substrings.
func containsAny(subs ...string) func(string) bool {
	return func(tag string) bool {
		for _, s := range subs {
			if strings.Contains(tag, s) {
				return true
			}
		}
		return false
	}
}

// hasAnyPrefix builds a predicate that reports whether the tag starts
// with any of the given prefixes.
func hasAnyPrefix(prefixes ...string) func(string) bool {
	return func(tag string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(tag, p) {
				return true
			}
		}
		return false
	}
}

// genderRule is one arm of the gender decision. The first arm whose match
// succeeds is terminal, even when its extract yields no gender.
type genderRule struct {
	match   func(string) bool
	extract func(string) Gender
}

// genderRules are evaluated in order. The verb-prefix arms must precede
// the nominal and pronoun arms: a verbal tag may contain NOUN-like or
// PRON-like substrings in its clitic segments.
var genderRules = []genderRule{
	// Imperfectives put gender in the 4th character (IV3MS, IV2FD).
	{match: func(tag string) bool { return strings.HasPrefix(tag, "IV") && len(tag) >= 4 },
		extract: imperfectiveGender},
	// Imperatives put gender second from the end of the subject suffix.
	{match: hasAnyPrefix("CV"), extract: imperativeGender},
	// Perfects put gender in the first clitic segment after ":".
	{match: hasAnyPrefix("PV"), extract: perfectGender},
	// Nominals default to masculine unless a feminine suffix is present.
	{match: containsAny("ADJ", "NOUN"), extract: nominalGender},
	{match: containsAny("PRON"), extract: pronounGender},
}

// GenderOf extracts grammatical gender from a tag. Tags matching no rule,
// and verb forms whose gender slot is empty, carry no gender.
func GenderOf(tag string) Gender {
	for _, r := range genderRules {
		if r.match(tag) {
			return r.extract(tag)
		}
	}
	return ""
}

func imperfectiveGender(tag string) Gender {
	switch tag[3] {
	case 'M':
		return Masculine
	case 'F':
		return Feminine
	}
	return ""
}

func imperativeGender(tag string) Gender {
	switch tag[len(tag)-2] {
	case 'F':
		return Feminine
	case 'M':
		return Masculine
	}
	return ""
}

// perfectGender reads the segment between the first ":" and the next ":"
// (or the end). "M" is tested before "F" within the segment.
func perfectGender(tag string) Gender {
	if tag == "PV+PVSUFF_3MS" {
		return Masculine
	}
	i := strings.IndexByte(tag, ':')
	if i < 0 {
		return ""
	}
	seg := tag[i+1:]
	if j := strings.IndexByte(seg, ':'); j >= 0 {
		seg = seg[:j]
	}
	if strings.Contains(seg, "M") {
		return Masculine
	}
	if strings.Contains(seg, "F") {
		return Feminine
	}
	return ""
}

func nominalGender(tag string) Gender {
	if strings.Contains(tag, "FEM") {
		return Feminine
	}
	return Masculine
}

// pronounGender reads the piece after the last underscore, which carries
// person, gender and number together (POSS_PRON_3FS).
func pronounGender(tag string) Gender {
	if strings.Contains(tag, "FEM") {
		return Feminine
	}
	if strings.Contains(tag, "PRON_") {
		last := tag[strings.LastIndexByte(tag, '_')+1:]
		if strings.Contains(last, "F") {
			return Feminine
		}
	}
	return Masculine
}

// numberRule is one arm of the number decision. A matched arm is terminal:
// it yields value, or extract's result when extract is set.
type numberRule struct {
	match   func(string) bool
	value   Number
	extract func(string) Number
}

// numberRules are evaluated in order. Explicit suffix markers win over
// everything; bare nominals read as singular; the verb and pronoun arms
// decode positional number letters.
var numberRules = []numberRule{
	{match: containsAny("SG"), value: Singular},
	{match: containsAny("DU"), value: Dual},
	{match: containsAny("PL"), value: Plural},
	{match: containsAny("ADJ", "NOUN"), value: Singular},
	{match: hasAnyPrefix("IV1", "IV2", "IV3"), extract: imperfectiveNumber},
	{match: hasAnyPrefix("CV", "PV"), extract: subjectSuffixNumber},
	{match: containsAny("PRON"), extract: pronounNumber},
}

// NumberOf extracts grammatical number from a tag. Tags matching no rule
// carry no number.
func NumberOf(tag string) Number {
	for _, r := range numberRules {
		if !r.match(tag) {
			continue
		}
		if r.extract != nil {
			return r.extract(tag)
		}
		return r.value
	}
	return ""
}

// imperfectiveNumber reads the number letter of an IV prefix: offset 3 for
// first person, offset 4 otherwise. Second person duals carry no gender
// letter, so IV2D is recognized outright.
func imperfectiveNumber(tag string) Number {
	if strings.HasPrefix(tag, "IV2D") {
		return Dual
	}
	idx := 4
	if strings.HasPrefix(tag, "IV1") {
		idx = 3
	}
	if idx >= len(tag) {
		return ""
	}
	switch tag[idx] {
	case 'S':
		return Singular
	case 'D':
		return Dual
	case 'P':
		return Plural
	}
	return ""
}

// subjectSuffixNumber reads the final number letter of a perfect or
// imperative subject suffix. The bare tag PV_PASS carries no number.
func subjectSuffixNumber(tag string) Number {
	if tag == "PV_PASS" {
		return ""
	}
	switch tag[len(tag)-1] {
	case 'S':
		return Singular
	case 'D':
		return Dual
	case 'P':
		return Plural
	}
	return ""
}

// pronounNumber reads the final letter of a pronoun tag, defaulting to
// singular when it is not a dual or plural letter.
func pronounNumber(tag string) Number {
	switch tag[len(tag)-1] {
	case 'D':
		return Dual
	case 'P':
		return Plural
	}
	return Singular
}

// definitenessRule pairs a predicate with its verdict.
type definitenessRule struct {
	match func(string) bool
	value Definiteness
}

// definitenessRules are evaluated in order. INDEF must be tested before
// the bare DEF probe because every INDEF marker contains DEF; NOUN_PROP
// precedes DEF because proper nouns are definite without an article.
var definitenessRules = []definitenessRule{
	{match: containsAny("INDEF"), value: Indefinite},
	{match: containsAny("NOUN_PROP"), value: Definite},
	{match: containsAny("DEF"), value: Definite},
	{match: hasAnyPrefix("DET"), value: Definite},
	{match: containsAny("POSS"), value: Definite},
}

// DefinitenessOf extracts the definiteness of a nominal tag. Tags without
// a NOUN marker carry no definiteness; nominals matching no rule default
// to indefinite.
func DefinitenessOf(tag string) Definiteness {
	if !strings.Contains(tag, "NOUN") {
		return ""
	}
	for _, r := range definitenessRules {
		if r.match(tag) {
			return r.value
		}
	}
	return Indefinite
}

// PersonOf extracts grammatical person from verbal and pronominal tags.
// Digits are probed in a fixed order, so a tag carrying both a 2nd person
// subject marker and a 3rd person clitic reads as 2nd person.
func PersonOf(tag string) Person {
	switch {
	case strings.Contains(tag, "1"):
		return 1
	case strings.Contains(tag, "2"):
		return 2
	case strings.Contains(tag, "3"):
		return 3
	}
	return 0
}

// MoodOf extracts verbal mood from the MOOD marker, decoding the code
// after the last "MOOD" and its delimiter character: I (indicative),
// J (jussive), S (subjunctive) or SJ.
func MoodOf(tag string) Mood {
	i := strings.LastIndex(tag, "MOOD")
	if i < 0 {
		return ""
	}
	rest := tag[i+len("MOOD"):]
	if len(rest) < 2 {
		return ""
	}
	switch rest[1:] {
	case "I":
		return Indicative
	case "J":
		return Jussive
	case "S":
		return Subjunctive
	case "SJ":
		return SubjJussive
	}
	return ""
}

// aspectOrder lists the aspect codes by probe order. The imperative code
// wins over perfect, and perfect over imperfect, for tags carrying more
// than one.
var aspectOrder = []Aspect{AspectImperative, AspectPerfect, AspectImperfect}

// AspectOf extracts the verbal aspect code from a tag. Non-verbal tags
// carry no aspect.
func AspectOf(tag string) Aspect {
	for _, a := range aspectOrder {
		if strings.Contains(tag, string(a)) {
			return a
		}
	}
	return ""
}

// CaseOf returns the "+"-segment of a tag carrying the case marker:
// CaseOf("NOUN+CASE_DEF_GEN") == "CASE_DEF_GEN". The empty string means
// the tag carries no case marking.
func CaseOf(tag string) string {
	for _, seg := range strings.Split(tag, "+") {
		if strings.Contains(seg, "CASE") {
			return seg
		}
	}
	return ""
}

// IsPassive reports whether the tag marks passive voice.
func IsPassive(tag string) bool {
	return strings.Contains(tag, "PASS")
}
