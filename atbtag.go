// Package atbtag decodes Penn Arabic Treebank (ATB v3.0) morphosyntactic
// tags: it normalizes compound tag strings down to canonical
// part-of-speech labels, maps them onto Penn (Bies) English tags, and
// extracts the morphological features a tag encodes (gender, number,
// person, mood, case, definiteness, aspect, voice).
//
// Every operation is a pure function over the tag text, total for
// arbitrary input. A tag that does not mark some dimension yields that
// dimension's zero value; nothing panics on malformed tags.
package atbtag

// Decoder resolves tags against a Tagset. A Decoder is immutable after
// construction and safe for concurrent use.
type Decoder struct {
	tagset *Tagset
}

// NewDecoder returns a Decoder backed by the tagset compiled into the
// package.
func NewDecoder() *Decoder {
	return &Decoder{tagset: DefaultTagset()}
}

// NewDecoderWithTagset returns a Decoder backed by ts, for callers that
// load a customized tagset with LoadTagset.
func NewDecoderWithTagset(ts *Tagset) *Decoder {
	return &Decoder{tagset: ts}
}

// Tagset returns the tagset backing d.
func (d *Decoder) Tagset() *Tagset {
	return d.tagset
}
