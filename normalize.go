package atbtag

import (
	"regexp"
	"strings"
)

// EmptyCategory is the ATB sentinel for empty categories (traces and
// elided pronominal subjects). It is shaped like a dash-tag chain yet is
// a complete label on its own, so the normalizers pass it through.
const EmptyCategory = "-NONE-"

// traceRe matches a numeric trace or gap co-index ("-12", "=3").
var traceRe = regexp.MustCompile(`[-=][0-9]+`)

// StripTrace removes the numeric co-index from a constituent label,
// keeping everything before the first "-" or "=" that is followed by
// digits. Functional dash-tags survive:
//
//	StripTrace("NP-SBJ-12") == "NP-SBJ"
//	StripTrace("SBAR-LOC")  == "SBAR-LOC"
func StripTrace(tag string) string {
	loc := traceRe.FindStringIndex(tag)
	if loc == nil {
		return tag
	}
	return tag[:loc[0]]
}

// StripDashTags removes every dash-tag and gap annotation from a
// constituent label, keeping only the bare category:
//
//	StripDashTags("NP-SBJ-12")   == "NP"
//	StripDashTags(EmptyCategory) == EmptyCategory
func StripDashTags(tag string) string {
	if tag == EmptyCategory {
		return tag
	}
	if i := strings.IndexByte(tag, '-'); i >= 0 {
		tag = tag[:i]
	}
	if i := strings.IndexByte(tag, '='); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

// StripMorpho reduces a morphological tag to its canonical part-of-speech.
// Clitic material after the first ":" is dropped, then each "+"-segment is
// tried against the vocabulary in order. A segment matches as a whole, or
// for compound segments of more than two "_"-pieces as the join of the
// first two pieces, or piece by piece. The first hit wins. A tag with no
// vocabulary hit is returned colon-stripped but otherwise unchanged.
//
//	StripMorpho("IV3MD+IV+IVSUFF_SUBJ:D_MOOD:SJ") == "IV"
//	StripMorpho("DET+NOUN+CASE_DEF_ACC")          == "DET"
//	StripMorpho("CASE_DEF_ACC")                   == "CASE_DEF_ACC"
func (d *Decoder) StripMorpho(tag string) string {
	if i := strings.IndexByte(tag, ':'); i >= 0 {
		tag = tag[:i]
	}
	for _, seg := range strings.Split(tag, "+") {
		if d.tagset.IsPOS(seg) {
			return seg
		}
		parts := strings.Split(seg, "_")
		if len(parts) > 2 {
			// Compound categories such as DEM_PRON keep their first two
			// pieces together; the rest of the segment is inflection.
			if joined := parts[0] + "_" + parts[1]; d.tagset.IsPOS(joined) {
				return joined
			}
		} else {
			for _, p := range parts {
				if d.tagset.IsPOS(p) {
					return p
				}
			}
		}
	}
	return tag
}

// StripAll composes StripDashTags and StripMorpho, taking any treebank
// label down to its canonical form. The result is a fixed point of
// StripAll itself.
func (d *Decoder) StripAll(tag string) string {
	return d.StripMorpho(StripDashTags(tag))
}

// SimplifyVerb collapses every verbal tag to the English-style "VB".
// Tags already carrying "VB" anywhere are collapsed outright, as English
// input. Otherwise the canonical form is looked up in the verbal subset
// of the vocabulary. Non-verbal tags are returned unchanged.
func (d *Decoder) SimplifyVerb(tag string) string {
	if strings.Contains(tag, "VB") {
		return "VB"
	}
	if d.tagset.IsVerb(d.StripAll(tag)) {
		return "VB"
	}
	return tag
}

// PennTag maps an ATB tag to its Penn (Bies) equivalent. The lookup is
// verbatim; callers wanting a mapping for a fully inflected tag should
// canonicalize with StripAll first. The boolean is false when the tagset
// carries no mapping for tag.
func (d *Decoder) PennTag(tag string) (string, bool) {
	return d.tagset.Penn(tag)
}
