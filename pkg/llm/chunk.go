package llm

type RequestKind int

const (
	NewsQuery RequestKind = iota
	LocationQuery
	TickerQuery
)

func (k RequestKind) String() string {
	switch k {
	case NewsQuery:
		return "news"
	case LocationQuery:
		return "locations"
	case TickerQuery:
		return "ticker"
	default:
		return "unknown"
	}
}

// GroundingChunk is a citation attached to a generated answer. It is either a
// WebChunk or a MapChunk.
type GroundingChunk interface {
	groundingChunk()
}

type WebChunk struct {
	URI   string
	Title string
}

type MapChunk struct {
	PlaceID        string
	Title          string
	URI            string
	ReviewSnippets []ReviewSnippet
}

type ReviewSnippet struct {
	Content string
	Author  string
}

func (WebChunk) groundingChunk() {}
func (MapChunk) groundingChunk() {}

// QueryResult is the normalized answer to a single request. It is never
// mutated after Normalize returns it.
type QueryResult struct {
	Markdown string
	Chunks   []GroundingChunk
}

func (r QueryResult) WebChunks() []WebChunk {
	var out []WebChunk
	for _, c := range r.Chunks {
		if web, ok := c.(WebChunk); ok {
			out = append(out, web)
		}
	}
	return out
}

func (r QueryResult) MapChunks() []MapChunk {
	var out []MapChunk
	for _, c := range r.Chunks {
		if place, ok := c.(MapChunk); ok {
			out = append(out, place)
		}
	}
	return out
}
