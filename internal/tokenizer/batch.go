package tokenizer

import (
	"errors"
	"fmt"

	"github.com/born-ml/strata/internal/tensor"
)

// PadID fills the positions after the end of a shorter sequence.
const PadID int32 = 0

// ErrEmptyBatch is returned by Batch when no texts are given.
var ErrEmptyBatch = errors.New("tokenizer: empty batch")

// Padded is a batch of token sequences laid out row-major as [Size, SeqLen].
type Padded struct {
	IDs     []int32 // len(IDs) == Size * SeqLen
	Size    int
	SeqLen  int
	Lengths []int // unpadded length of each row
}

// Row returns the unpadded tokens of row i.
func (p *Padded) Row(i int) []int32 {
	start := i * p.SeqLen
	return p.IDs[start : start+p.Lengths[i]]
}

// Batch encodes texts with tok and pads them with PadID to the longest sequence. When
// maxLen is positive, sequences are truncated to at most maxLen tokens. SeqLen is at
// least 1 so that a batch of empty strings still forms a valid tensor.
func Batch(tok Tokenizer, texts []string, maxLen int) (*Padded, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyBatch
	}

	encoded := make([][]int32, len(texts))
	seqLen := 1
	for i, text := range texts {
		ids, err := tok.Encode(text)
		if err != nil {
			return nil, fmt.Errorf("failed to encode text %d: %w", i, err)
		}
		if maxLen > 0 && len(ids) > maxLen {
			ids = ids[:maxLen]
		}
		encoded[i] = ids
		seqLen = max(seqLen, len(ids))
	}

	padded := &Padded{
		IDs:     make([]int32, len(texts)*seqLen),
		Size:    len(texts),
		SeqLen:  seqLen,
		Lengths: make([]int, len(texts)),
	}
	for i, ids := range encoded {
		row := padded.IDs[i*seqLen : (i+1)*seqLen]
		n := copy(row, ids)
		for j := n; j < seqLen; j++ {
			row[j] = PadID
		}
		padded.Lengths[i] = n
	}

	return padded, nil
}

// IndexTensor copies the batch into an int32 [Size, SeqLen] tensor.
func IndexTensor[B tensor.Backend](p *Padded, backend B) (*tensor.Tensor[int32, B], error) {
	ids := make([]int32, len(p.IDs))
	copy(ids, p.IDs)
	return tensor.FromSlice(ids, tensor.Shape{p.Size, p.SeqLen}, backend)
}
