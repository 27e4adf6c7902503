// Package tokenizer provides text tokenization for the embedding layers.
//
// This package wraps the internal tokenizer implementation and provides a clean
// public API.
//
// Example usage:
//
//	import "github.com/born-ml/strata/tokenizer"
//
//	tok, err := tokenizer.NewTikToken("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	batch, err := tokenizer.Batch(tok, []string{"Hello, world!", "Hi"}, 32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	indices, err := tokenizer.IndexTensor(batch, backend) // int32 [2, seqLen]
package tokenizer

import (
	"github.com/born-ml/strata/internal/tokenizer"
	"github.com/born-ml/strata/tensor"
)

// Tokenizer converts between text and token IDs.
type Tokenizer = tokenizer.Tokenizer

// TikToken wraps the OpenAI BPE encodings.
type TikToken = tokenizer.TikToken

// Padded is a batch of token sequences padded to a common length.
type Padded = tokenizer.Padded

// Supported encodings.
const (
	EncodingCL100kBase = tokenizer.EncodingCL100kBase
	EncodingP50kBase   = tokenizer.EncodingP50kBase
	EncodingR50kBase   = tokenizer.EncodingR50kBase
)

// PadID fills positions past the end of a shorter sequence.
const PadID = tokenizer.PadID

// ErrEmptyBatch is returned by Batch when no texts are given.
var ErrEmptyBatch = tokenizer.ErrEmptyBatch

// NewTikToken loads the named tiktoken encoding.
func NewTikToken(encoding string) (*TikToken, error) {
	return tokenizer.NewTikToken(encoding)
}

// Batch encodes texts and pads them with PadID; maxLen > 0 truncates.
func Batch(tok Tokenizer, texts []string, maxLen int) (*Padded, error) {
	return tokenizer.Batch(tok, texts, maxLen)
}

// IndexTensor lays a batch out as an int32 [Size, SeqLen] tensor.
func IndexTensor[B tensor.Backend](p *Padded, backend B) (*tensor.Tensor[int32, B], error) {
	return tokenizer.IndexTensor(p, backend)
}
