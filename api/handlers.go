package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/arabic-nlp/atbtag"
	"github.com/rs/zerolog/log"
)

// ---- JSON response types ------------------------------------------------

type featuresJSON struct {
	Gender       string `json:"gender,omitempty"`
	Number       string `json:"number,omitempty"`
	Person       int    `json:"person,omitempty"`
	Mood         string `json:"mood,omitempty"`
	Case         string `json:"case,omitempty"`
	Definiteness string `json:"definiteness,omitempty"`
	Aspect       string `json:"aspect,omitempty"`
	Passive      bool   `json:"passive"`
}

type decodeResponse struct {
	Tag       string       `json:"tag"`
	Canonical string       `json:"canonical"`
	Penn      string       `json:"penn,omitempty"`
	Features  featuresJSON `json:"features"`
}

type batchDecodeRequest struct {
	Tags []string `json:"tags"`
}

type batchDecodeResponse struct {
	Results []decodeResponse `json:"results"`
}

type normalizeResponse struct {
	Tag            string `json:"tag"`
	TraceStripped  string `json:"trace_stripped"`
	DashStripped   string `json:"dash_stripped"`
	MorphoStripped string `json:"morpho_stripped"`
	Canonical      string `json:"canonical"`
	SimplifiedVerb string `json:"simplified_verb"`
}

type tagsetResponse struct {
	POSTags  []string          `json:"pos_tags"`
	VerbTags []string          `json:"verb_tags"`
	PennMap  map[string]string `json:"penn_map"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toDecodeResponse(d atbtag.Decoded) decodeResponse {
	return decodeResponse{
		Tag:       d.Tag,
		Canonical: d.Canonical,
		Penn:      d.Penn,
		Features: featuresJSON{
			Gender:       string(d.Gender),
			Number:       string(d.Number),
			Person:       int(d.Person),
			Mood:         string(d.Mood),
			Case:         d.Case,
			Definiteness: string(d.Definiteness),
			Aspect:       string(d.Aspect),
			Passive:      d.Passive,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func (service *Service) handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		writeError(w, http.StatusBadRequest, "missing 'tag' query parameter")
		return
	}
	writeJSON(w, http.StatusOK, toDecodeResponse(service.decoder.Decode(tag)))
}

func (service *Service) handleDecodeBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body batchDecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Tags) == 0 {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'tags' field")
		return
	}
	if limit := service.config.BatchLimit(); len(body.Tags) > limit {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("too many tags: %d exceeds the limit of %d", len(body.Tags), limit))
		return
	}

	results := make([]decodeResponse, 0, len(body.Tags))
	for _, tag := range body.Tags {
		results = append(results, toDecodeResponse(service.decoder.Decode(tag)))
	}
	writeJSON(w, http.StatusOK, batchDecodeResponse{Results: results})
}

func (service *Service) handleNormalize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		writeError(w, http.StatusBadRequest, "missing 'tag' query parameter")
		return
	}
	writeJSON(w, http.StatusOK, normalizeResponse{
		Tag:            tag,
		TraceStripped:  atbtag.StripTrace(tag),
		DashStripped:   atbtag.StripDashTags(tag),
		MorphoStripped: service.decoder.StripMorpho(tag),
		Canonical:      service.decoder.StripAll(tag),
		SimplifiedVerb: service.decoder.SimplifyVerb(tag),
	})
}

func (service *Service) handleTagset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	ts := service.decoder.Tagset()
	writeJSON(w, http.StatusOK, tagsetResponse{
		POSTags:  ts.POSTags(),
		VerbTags: ts.VerbTags(),
		PennMap:  ts.PennMap(),
	})
}

func (service *Service) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
