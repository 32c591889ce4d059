package models

type ExtractionKind int

const (
	// Extracted means the model returned a non-empty city name.
	Extracted ExtractionKind = iota
	// Fallback means the trimmed original query is used instead.
	Fallback
)

func (k ExtractionKind) String() string {
	if k == Extracted {
		return "extracted"
	}
	return "fallback"
}

// Extraction is the outcome of asking the model for a city. Err is set only
// when a Fallback was caused by a failed call.
type Extraction struct {
	Kind ExtractionKind
	City string
	Err  error
}

func NewExtracted(city string) Extraction {
	return Extraction{Kind: Extracted, City: city}
}

func NewFallback(query string, cause error) Extraction {
	return Extraction{Kind: Fallback, City: query, Err: cause}
}

func (e Extraction) IsFallback() bool { return e.Kind == Fallback }
