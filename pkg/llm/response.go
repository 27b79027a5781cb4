package llm

// Response mirrors the parts of a generateContent payload the dashboard consumes.
type Response struct {
	Text       string      `json:"text"`
	Candidates []Candidate `json:"candidates"`
}

type Candidate struct {
	GroundingMetadata *GroundingMetadata `json:"groundingMetadata,omitempty"`
}

type GroundingMetadata struct {
	GroundingChunks []RawChunk `json:"groundingChunks"`
}

type RawChunk struct {
	Web  *RawWeb  `json:"web,omitempty"`
	Maps *RawMaps `json:"maps,omitempty"`
}

type RawWeb struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type RawMaps struct {
	PlaceID            string                 `json:"placeId"`
	Title              string                 `json:"title"`
	URI                string                 `json:"uri"`
	PlaceAnswerSources *RawPlaceAnswerSources `json:"placeAnswerSources,omitempty"`
}

type RawPlaceAnswerSources struct {
	ReviewSnippets []RawReviewSnippet `json:"reviewSnippets"`
}

// RawReviewSnippet accepts both {content, author} and the SDK layout, where
// title carries the snippet text and review is only a reference id.
type RawReviewSnippet struct {
	Content           string `json:"content"`
	Author            string `json:"author"`
	Title             string `json:"title"`
	AuthorAttribution *struct {
		DisplayName string `json:"displayName"`
	} `json:"authorAttribution,omitempty"`
}

func (r *Response) groundingChunks() []RawChunk {
	if r == nil || len(r.Candidates) == 0 || r.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	return r.Candidates[0].GroundingMetadata.GroundingChunks
}
