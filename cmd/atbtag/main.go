// Command atbtag decodes ATB morphosyntactic tags in bulk.
//
// It reads one tag per line, or one tab-separated column of a larger
// stream, and writes one decoded record per tag:
//
//	atbtag -in tags.txt -out decoded.tsv
//	cut -f5 treebank.tsv | atbtag -format jsonl
//
// In TSV output, features the tag does not mark are written as "_";
// in JSON lines output they are omitted.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arabic-nlp/atbtag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var tsvHeader = strings.Join([]string{
	"tag", "canonical", "penn", "gender", "number", "person",
	"mood", "case", "definiteness", "aspect", "passive",
}, "\t")

type recordJSON struct {
	Tag          string `json:"tag"`
	Canonical    string `json:"canonical"`
	Penn         string `json:"penn,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Number       string `json:"number,omitempty"`
	Person       int    `json:"person,omitempty"`
	Mood         string `json:"mood,omitempty"`
	Case         string `json:"case,omitempty"`
	Definiteness string `json:"definiteness,omitempty"`
	Aspect       string `json:"aspect,omitempty"`
	Passive      bool   `json:"passive"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	inPath := flag.String("in", "-", "input file, - for stdin")
	outPath := flag.String("out", "-", "output file, - for stdout")
	format := flag.String("format", "tsv", "output format: tsv or jsonl")
	column := flag.Int("column", 0, "1-based tab-separated column holding the tag, 0 for the whole line")
	dataDir := flag.String("data", "", "directory with a custom tagset, empty for the embedded one")
	flag.Parse()

	if *format != "tsv" && *format != "jsonl" {
		log.Fatal().Str("format", *format).Msg("format must be tsv or jsonl")
	}

	decoder := atbtag.NewDecoder()
	if *dataDir != "" {
		tagset, err := atbtag.LoadTagset(*dataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot load tagset")
		}
		decoder = atbtag.NewDecoderWithTagset(tagset)
	}

	in := os.Stdin
	if *inPath != "-" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot open input")
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot create output")
		}
		out = f
	}

	w := bufio.NewWriter(out)
	n, err := run(decoder, in, w, *format, *column)
	if err != nil {
		log.Fatal().Err(err).Msg("decode stream")
	}
	if err := w.Flush(); err != nil {
		log.Fatal().Err(err).Msg("flush output")
	}
	if out != os.Stdout {
		if err := out.Close(); err != nil {
			log.Fatal().Err(err).Msg("close output")
		}
	}

	log.Info().Int("tags", n).Msg("done")
}

// run decodes every tag on the input stream. It returns the number of
// tags decoded; blank lines and rows missing the tag column are skipped.
func run(decoder *atbtag.Decoder, in io.Reader, out *bufio.Writer, format string, column int) (int, error) {
	if format == "tsv" {
		if _, err := fmt.Fprintln(out, tsvHeader); err != nil {
			return 0, err
		}
	}
	enc := json.NewEncoder(out)

	n := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		tag := scanner.Text()
		if column > 0 {
			fields := strings.Split(tag, "\t")
			if column > len(fields) {
				continue
			}
			tag = fields[column-1]
		}
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}

		decoded := decoder.Decode(tag)
		switch format {
		case "tsv":
			if _, err := fmt.Fprintln(out, tsvRow(decoded)); err != nil {
				return n, err
			}
		case "jsonl":
			if err := enc.Encode(toRecord(decoded)); err != nil {
				return n, err
			}
		}
		n++
	}
	return n, scanner.Err()
}

func tsvRow(d atbtag.Decoded) string {
	return strings.Join([]string{
		d.Tag,
		d.Canonical,
		orUnderscore(d.Penn),
		orUnderscore(string(d.Gender)),
		orUnderscore(string(d.Number)),
		personColumn(d.Person),
		orUnderscore(string(d.Mood)),
		orUnderscore(d.Case),
		orUnderscore(string(d.Definiteness)),
		orUnderscore(string(d.Aspect)),
		strconv.FormatBool(d.Passive),
	}, "\t")
}

func orUnderscore(s string) string {
	if s == "" {
		return "_"
	}
	return s
}

func personColumn(p atbtag.Person) string {
	if p == 0 {
		return "_"
	}
	return strconv.Itoa(int(p))
}

func toRecord(d atbtag.Decoded) recordJSON {
	return recordJSON{
		Tag:          d.Tag,
		Canonical:    d.Canonical,
		Penn:         d.Penn,
		Gender:       string(d.Gender),
		Number:       string(d.Number),
		Person:       int(d.Person),
		Mood:         string(d.Mood),
		Case:         d.Case,
		Definiteness: string(d.Definiteness),
		Aspect:       string(d.Aspect),
		Passive:      d.Passive,
	}
}
