// Package tokenizer turns text into the token index tensors consumed by
// nn.Embedding.
//
// TikToken wraps the BPE encodings used by OpenAI models (cl100k_base,
// p50k_base, r50k_base). Batch pads a set of encoded texts to a common length and
// IndexTensor lays the result out as an int32 [batch, seq] tensor.
//
// Example usage:
//
//	tok, err := tokenizer.NewTikToken("cl100k_base")
//	if err != nil {
//	    return err
//	}
//
//	batch, err := tokenizer.Batch(tok, []string{"Hello, world!", "Hi"}, 16)
//	if err != nil {
//	    return err
//	}
//
//	indices, err := tokenizer.IndexTensor(batch, backend) // [2, seqLen]
//	embed := nn.NewEmbedding(tok.VocabSize(), 64, rng, backend)
//	vectors := embed.Forward(indices) // [2, seqLen, 64]
package tokenizer
