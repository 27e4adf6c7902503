package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Encoding names understood by NewTikToken.
const (
	EncodingCL100kBase = "cl100k_base" // GPT-4, GPT-3.5-turbo
	EncodingP50kBase   = "p50k_base"   // Codex, text-davinci-002/003
	EncodingR50kBase   = "r50k_base"   // GPT-3
)

// vocabSizes holds the number of IDs per encoding, special tokens included.
var vocabSizes = map[string]int{
	EncodingCL100kBase: 100277,
	EncodingP50kBase:   50281,
	EncodingR50kBase:   50257,
}

// TikToken wraps the pkoukk/tiktoken-go library for OpenAI tokenizers.
type TikToken struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewTikToken loads the named encoding. The BPE ranks are fetched and cached by
// tiktoken-go on first use.
func NewTikToken(encodingName string) (*TikToken, error) {
	if _, ok := vocabSizes[encodingName]; !ok {
		return nil, fmt.Errorf("unsupported tiktoken encoding %q", encodingName)
	}

	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}

	return &TikToken{
		encoding: encoding,
		name:     encodingName,
	}, nil
}

// Encode converts text to token IDs. Special-token text is encoded as ordinary text.
func (t *TikToken) Encode(text string) ([]int32, error) {
	tokens := t.encoding.Encode(text, nil, nil)

	result := make([]int32, len(tokens))
	for i, tok := range tokens {
		result[i] = int32(tok) //nolint:gosec // G115: vocab size < 2^31.
	}

	return result, nil
}

// Decode converts token IDs back to text.
func (t *TikToken) Decode(tokens []int32) (string, error) {
	intTokens := make([]int, len(tokens))
	for i, tok := range tokens {
		if tok < 0 || int(tok) >= t.VocabSize() {
			return "", fmt.Errorf("token %d at position %d outside vocabulary of %d", tok, i, t.VocabSize())
		}
		intTokens[i] = int(tok)
	}

	return t.encoding.Decode(intTokens), nil
}

// VocabSize returns the number of token IDs in the encoding.
func (t *TikToken) VocabSize() int {
	return vocabSizes[t.name]
}

// Name returns the encoding name.
func (t *TikToken) Name() string {
	return t.name
}
