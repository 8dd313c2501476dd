// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the decoded shapes of CourtListener API payloads
// shared between the gateway, the report formatters, and the tool surface.
//
// The upstream API is loosely typed: citation lists carry either plain
// strings or volume/reporter/page objects, the clusters field of a lookup
// entry is sometimes a single object and sometimes an array, and numeric
// identifiers arrive as numbers or strings depending on the API version.
// Each ambiguity is resolved here with an explicit variant decoder so the
// rest of the code sees one stable shape.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SearchResponse is a page of results from the v4 unified search endpoint.
type SearchResponse struct {
	Count   int         `json:"count"`
	Results []SearchHit `json:"results"`
}

// SearchHit is one opinion-search result.
type SearchHit struct {
	CaseName    string       `json:"caseName"`
	Court       string       `json:"court"`
	DateFiled   string       `json:"dateFiled"`
	Citations   CitationList `json:"citations"`
	Snippet     string       `json:"snippet"`
	ClusterID   json.Number  `json:"cluster_id"`
	AbsoluteURL string       `json:"absolute_url"`

	// The citation count has shipped under two names across API versions.
	// CitedBy picks the first one present.
	CiteCount     *int `json:"citeCount"`
	CitationCount *int `json:"citation_count"`
}

// CitedBy returns the citing-case count from the first count field the
// upstream populated, or zero when neither is present.
func (h SearchHit) CitedBy() int {
	for _, c := range []*int{h.CiteCount, h.CitationCount} {
		if c != nil {
			return *c
		}
	}
	return 0
}

// CitationRef is one citation in either upstream form: a plain string, or
// a structured volume/reporter/page object.
type CitationRef struct {
	Raw      string
	Volume   string
	Reporter string
	Page     string
}

// String renders the citation: the raw string verbatim, or the non-empty
// structured fields joined by single spaces.
func (c CitationRef) String() string {
	if c.Raw != "" {
		return c.Raw
	}
	var parts []string
	for _, f := range []string{c.Volume, c.Reporter, c.Page} {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

// UnmarshalJSON accepts a JSON string or an object with volume, reporter,
// and page fields. Volume and page arrive as numbers or strings.
func (c *CitationRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*c = CitationRef{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = CitationRef{Raw: s}
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			Volume   flexString `json:"volume"`
			Reporter flexString `json:"reporter"`
			Page     flexString `json:"page"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*c = CitationRef{
			Volume:   string(obj.Volume),
			Reporter: string(obj.Reporter),
			Page:     string(obj.Page),
		}
		return nil
	}
	// Bare number or other scalar: keep its literal text.
	*c = CitationRef{Raw: string(data)}
	return nil
}

// CitationList normalizes the citations field: an array of strings, an
// array of objects, or a single scalar all decode to a slice.
type CitationList []CitationRef

// UnmarshalJSON accepts an array or a lone value.
func (l *CitationList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}
	if data[0] == '[' {
		var refs []CitationRef
		if err := json.Unmarshal(data, &refs); err != nil {
			return err
		}
		*l = refs
		return nil
	}
	var ref CitationRef
	if err := json.Unmarshal(data, &ref); err != nil {
		return err
	}
	*l = CitationList{ref}
	return nil
}

// LookupEntry is one resolved citation from the citation-lookup endpoint.
// Status mirrors HTTP semantics: 200 means resolved, 404 means no match.
type LookupEntry struct {
	Citation            string      `json:"citation"`
	NormalizedCitations []string    `json:"normalized_citations"`
	Status              int         `json:"status"`
	Clusters            ClusterList `json:"clusters"`
}

// ClusterList normalizes the clusters field, which older API versions
// return as a single object rather than an array.
type ClusterList []Cluster

// UnmarshalJSON accepts an array of clusters or a single cluster object.
func (l *ClusterList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}
	if data[0] == '[' {
		var cs []Cluster
		if err := json.Unmarshal(data, &cs); err != nil {
			return err
		}
		*l = cs
		return nil
	}
	var c Cluster
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*l = ClusterList{c}
	return nil
}

// Cluster is case-level metadata grouping one or more opinions.
// SubOpinions holds relative URLs whose path encodes each opinion's id.
type Cluster struct {
	ID          json.Number  `json:"id"`
	CaseName    string       `json:"case_name"`
	DateFiled   string       `json:"date_filed"`
	AbsoluteURL string       `json:"absolute_url"`
	Citations   CitationList `json:"citations"`
	SubOpinions []string     `json:"sub_opinions"`
}

// Opinion is a single authored document. Exactly one of the text fields is
// normally populated; report.ExtractOpinionText applies the priority order.
type Opinion struct {
	ID                json.Number `json:"id"`
	PlainText         string      `json:"plain_text"`
	HTMLWithCitations string      `json:"html_with_citations"`
	HTML              string      `json:"html"`
	HTMLColumbia      string      `json:"html_columbia"`
	HTMLLawbox        string      `json:"html_lawbox"`
	HTMLAnon2020      string      `json:"html_anon_2020"`
	XMLHarvard        string      `json:"xml_harvard"`
	AuthorStr         string      `json:"author_str"`
	Type              string      `json:"type"`
}

// flexString decodes a JSON string, number, or null into its literal text.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}
