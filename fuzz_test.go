package atbtag

import (
	"strings"
	"testing"
)

func FuzzStripAll(f *testing.F) {
	f.Add("IV3MD+IV+IVSUFF_SUBJ:D_MOOD:SJ")
	f.Add("DET+NOUN+CASE_DEF_ACC")
	f.Add("NOUN_PROP+CASE_INDEF_NOM")
	f.Add("PV_PASS+PVSUFF_SUBJ:3MS")
	f.Add("NP-SBJ-12")
	f.Add("-NONE-")
	f.Add("DEM_PRON_MS")
	f.Add("")
	f.Add("+")
	f.Add(":::")
	f.Add("\xff\xfe")
	f.Add("\x00")

	d := NewDecoder()
	f.Fuzz(func(t *testing.T, tag string) {
		first := d.StripAll(tag)

		// Fixed point: a canonicalized tag canonicalizes to itself.
		if second := d.StripAll(first); second != first {
			t.Errorf("not a fixed point:\ninput:  %q\nfirst:  %q\nsecond: %q", tag, first, second)
		}
	})
}

func FuzzStripMorphoVocabulary(f *testing.F) {
	f.Add("IV3MD+IV+IVSUFF_SUBJ:D_MOOD:SJ")
	f.Add("DET+NOUN+CASE_DEF_ACC")
	f.Add("CASE_DEF_ACC")
	f.Add("PVSUFF_DO:3MS")
	f.Add("PRON_3MS")
	f.Add("")
	f.Add("_+_")
	f.Add("\xff")

	d := NewDecoder()
	f.Fuzz(func(t *testing.T, tag string) {
		got := d.StripMorpho(tag)

		// The result is either a vocabulary tag or the colon-stripped
		// input, never anything else.
		base := tag
		if i := strings.IndexByte(base, ':'); i >= 0 {
			base = base[:i]
		}
		if got != base && !d.Tagset().IsPOS(got) {
			t.Errorf("StripMorpho(%q) = %q: neither a vocabulary tag nor the colon-stripped input %q",
				tag, got, base)
		}
	})
}

func FuzzDecode(f *testing.F) {
	f.Add("IV3MD+IV+IVSUFF_SUBJ:D_MOOD:SJ")
	f.Add("PV+PVSUFF_3MS")
	f.Add("CV")
	f.Add("IV3")
	f.Add("PV_PASS")
	f.Add("NOUN+NSUFF_FEM_SG+CASE_DEF_GEN")
	f.Add("POSS_PRON_3FS")
	f.Add("-NONE-")
	f.Add("")
	f.Add("123")
	f.Add("\xff\xfe\x00")

	d := NewDecoder()
	f.Fuzz(func(t *testing.T, tag string) {
		// Every extractor is total; this must not panic on any input.
		got := d.Decode(tag)

		if again := d.Decode(tag); again != got {
			t.Errorf("Decode(%q) is not deterministic:\nfirst:  %+v\nsecond: %+v", tag, got, again)
		}

		switch got.Gender {
		case "", Masculine, Feminine:
		default:
			t.Errorf("Decode(%q).Gender = %q: unknown value", tag, got.Gender)
		}
		switch got.Number {
		case "", Singular, Dual, Plural:
		default:
			t.Errorf("Decode(%q).Number = %q: unknown value", tag, got.Number)
		}
		switch got.Mood {
		case "", Indicative, Subjunctive, Jussive, SubjJussive:
		default:
			t.Errorf("Decode(%q).Mood = %q: unknown value", tag, got.Mood)
		}
		switch got.Definiteness {
		case "", Definite, Indefinite:
		default:
			t.Errorf("Decode(%q).Definiteness = %q: unknown value", tag, got.Definiteness)
		}
		switch got.Aspect {
		case "", AspectPerfect, AspectImperfect, AspectImperative:
		default:
			t.Errorf("Decode(%q).Aspect = %q: unknown value", tag, got.Aspect)
		}
		if got.Person < 0 || got.Person > 3 {
			t.Errorf("Decode(%q).Person = %d: out of range", tag, got.Person)
		}
	})
}
