package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/strata/internal/tensor"
)

// Embedding maps token indices to dense vectors.
//
// The lookup is expressed as a matrix product so it stays within basic tensor ops:
// indices [batch, seq] are one-hot encoded to [batch, seq, numEmbed], flattened to
// [batch*seq, numEmbed], multiplied by the [numEmbed, embedDim] weight and reshaped
// to [batch, seq, embedDim]. Row i of the result is exactly row i of the weight.
//
// Example:
//
//	// Vocabulary of 10000 words, embedding dimension 256
//	embed := nn.NewEmbedding(10000, 256, rng, backend)
//
//	indices, _ := tensor.FromSlice([]int32{1, 2, 3, 4, 5, 10, 11, 12, 13, 14},
//	    tensor.Shape{2, 5}, backend)
//	embeddings := embed.Forward(indices) // [2, 5, 256]
type Embedding[B tensor.Backend] struct {
	modeState

	weight   *Parameter[B] // [numEmbed, embedDim]
	numEmbed int
	embedDim int
}

// NewEmbedding creates an Embedding layer with weights drawn from N(0, 1).
func NewEmbedding[B tensor.Backend](numEmbeddings, embeddingDim int, rng *rand.Rand, backend B) *Embedding[B] {
	weight := Normal(tensor.Shape{numEmbeddings, embeddingDim}, rng, backend)
	return NewEmbeddingWithWeight(weight)
}

// NewEmbeddingWithWeight creates an Embedding layer around a pre-initialized
// [numEmbeddings, embeddingDim] weight, e.g. pretrained vectors.
func NewEmbeddingWithWeight[B tensor.Backend](weight *tensor.Tensor[float32, B]) *Embedding[B] {
	shape := weight.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("embedding weight must be 2D, got shape %v", shape))
	}

	return &Embedding[B]{
		weight:   NewParameter("weight", weight),
		numEmbed: shape[0],
		embedDim: shape[1],
	}
}

// Forward looks up indices of shape [batch, seq] and returns [batch, seq, embedDim].
//
// Panics if the input is not 2D or any index is outside [0, NumEmbeddings).
func (e *Embedding[B]) Forward(x *tensor.Tensor[int32, B]) *tensor.Tensor[float32, B] {
	shape := x.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("Embedding.Forward: expected 2D input [batch, seq_len], got shape %v", shape))
	}
	batch, seqLen := shape[0], shape[1]

	oneHot := tensor.OneHot(x, e.numEmbed)
	flat := oneHot.View(batch*seqLen, e.numEmbed)
	return flat.MatMul(e.weight.Tensor()).View(batch, seqLen, e.embedDim)
}

// Parameters returns [weight].
func (e *Embedding[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{e.weight}
}

// NamedParameters returns {"weight"}.
func (e *Embedding[B]) NamedParameters() map[string]*Parameter[B] {
	return map[string]*Parameter[B]{"weight": e.weight}
}

// Weight returns the embedding matrix parameter.
func (e *Embedding[B]) Weight() *Parameter[B] {
	return e.weight
}

// NumEmbeddings returns the vocabulary size.
func (e *Embedding[B]) NumEmbeddings() int {
	return e.numEmbed
}

// EmbeddingDim returns the size of each vector.
func (e *Embedding[B]) EmbeddingDim() int {
	return e.embedDim
}

// StateDict returns the live weight tensor.
func (e *Embedding[B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{"weight": e.weight.Tensor().Raw()}
}

// LoadStateDict copies "weight" into the layer.
func (e *Embedding[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	return e.weight.load(stateDict, "weight")
}
