package atbtag

import "testing"

func TestStripTrace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NP-SBJ-12", "NP-SBJ"},
		{"SBAR-LOC", "SBAR-LOC"},
		{"NP=1", "NP"},
		{"WHNP-3-4", "WHNP"},
		{"-NONE-", "-NONE-"},
		{"NP-SBJ", "NP-SBJ"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripTrace(tt.in); got != tt.want {
			t.Errorf("StripTrace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripDashTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NP-SBJ-12", "NP"},
		{"-NONE-", "-NONE-"},
		{"NP=1", "NP"},
		{"S", "S"},
		{"PP-PRD=2", "PP"},
		{"NOUN+CASE_DEF_ACC", "NOUN+CASE_DEF_ACC"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripDashTags(tt.in); got != tt.want {
			t.Errorf("StripDashTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripMorpho(t *testing.T) {
	d := NewDecoder()
	tests := []struct {
		in   string
		want string
	}{
		// A "+"-segment that is itself a vocabulary tag wins.
		{"IV3MD+IV+IVSUFF_SUBJ:D_MOOD:SJ", "IV"},
		{"DET+NOUN+CASE_DEF_ACC", "DET"},
		{"NOUN+CASE_INDEF_GEN", "NOUN"},
		{"NOUN_PROP+CASE_INDEF_NOM", "NOUN_PROP"},
		{"PV+PVSUFF_SUBJ:3MS", "PV"},
		// Compound categories match as the join of their first two pieces.
		{"DEM_PRON_MS", "DEM_PRON"},
		// Two-piece segments match piece by piece.
		{"PRON_3MS", "PRON"},
		// No vocabulary hit: the colon-stripped tag comes back unchanged.
		{"CASE_DEF_ACC", "CASE_DEF_ACC"},
		{"PVSUFF_DO:3MS", "PVSUFF_DO"},
		{"FOO+BAR", "FOO+BAR"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := d.StripMorpho(tt.in); got != tt.want {
			t.Errorf("StripMorpho(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripAll(t *testing.T) {
	d := NewDecoder()
	tests := []struct {
		in   string
		want string
	}{
		{"DET+NOUN+CASE_DEF_ACC", "DET"},
		{"IV3MD+IV+IVSUFF_SUBJ:D_MOOD:SJ", "IV"},
		{"NP-SBJ-12", "NP"},
		{"-NONE-", "-NONE-"},
		{"ADJ+NSUFF_FEM_SG+CASE_DEF_GEN", "ADJ"},
		{"PUNC", "PUNC"},
		{"", ""},
	}
	for _, tt := range tests {
		got := d.StripAll(tt.in)
		if got != tt.want {
			t.Errorf("StripAll(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := d.StripAll(got); again != got {
			t.Errorf("StripAll(%q) = %q is not a fixed point: got %q on reapplication", tt.in, got, again)
		}
	}
}

func TestSimplifyVerb(t *testing.T) {
	d := NewDecoder()
	tests := []struct {
		in   string
		want string
	}{
		// English Penn tags collapse on the VB substring alone.
		{"VBD", "VB"},
		{"VBP", "VB"},
		// Arabic verbal tags collapse via their canonical form.
		{"PV+PVSUFF_SUBJ:3MS", "VB"},
		{"IV1P+IV+IVSUFF_MOOD:I", "VB"},
		{"PV_PASS", "VB"},
		{"CV+CVSUFF_SUBJ:2MP", "VB"},
		// Everything else passes through.
		{"NOUN+CASE_DEF_NOM", "NOUN+CASE_DEF_NOM"},
		{"DET", "DET"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := d.SimplifyVerb(tt.in); got != tt.want {
			t.Errorf("SimplifyVerb(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPennTag(t *testing.T) {
	d := NewDecoder()
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"NOUN", "NN", true},
		{"NOUN_PROP", "NNP", true},
		{"PVSUFF_DO:3MS", "PRP", true},
		{"POSS_PRON_3FS", "PRP$", true},
		{"DET+NOUN+CASE_DEF_ACC", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := d.PennTag(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("PennTag(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
