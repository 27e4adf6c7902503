package tokenizer

// Tokenizer converts between text and token IDs.
type Tokenizer interface {
	// Encode converts text to token IDs.
	Encode(text string) ([]int32, error)

	// Decode converts token IDs back to text.
	Decode(tokens []int32) (string, error)

	// VocabSize returns the number of distinct token IDs, i.e. every ID produced by
	// Encode is in [0, VocabSize).
	VocabSize() int

	// Name returns the encoding name.
	Name() string
}
