package atbtag

// Decoded is the complete decoding of a single tag: its canonical form,
// its Penn mapping and every morphological feature it marks. String
// fields and feature dimensions are empty when the tag does not carry
// them.
type Decoded struct {
	// Tag is the input, verbatim.
	Tag string
	// Canonical is the tag reduced to the POS vocabulary via StripAll.
	Canonical string
	// Penn is the Penn (Bies) mapping, looked up for the verbatim tag
	// first and for the canonical form second.
	Penn string
	// Case is the "+"-segment carrying the case marker.
	Case string

	Gender       Gender
	Number       Number
	Person       Person
	Mood         Mood
	Definiteness Definiteness
	Aspect       Aspect

	// Passive reports passive voice.
	Passive bool
}

// Decode runs the normalizer and every feature extractor over tag and
// collects the results.
func (d *Decoder) Decode(tag string) Decoded {
	canonical := d.StripAll(tag)
	penn, ok := d.tagset.Penn(tag)
	if !ok {
		penn, _ = d.tagset.Penn(canonical)
	}
	return Decoded{
		Tag:          tag,
		Canonical:    canonical,
		Penn:         penn,
		Case:         CaseOf(tag),
		Gender:       GenderOf(tag),
		Number:       NumberOf(tag),
		Person:       PersonOf(tag),
		Mood:         MoodOf(tag),
		Definiteness: DefinitenessOf(tag),
		Aspect:       AspectOf(tag),
		Passive:      IsPassive(tag),
	}
}
