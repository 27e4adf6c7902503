package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"

	"github.com/born-ml/strata/backend/cpu"
	"github.com/born-ml/strata/internal/envconfig"
	"github.com/born-ml/strata/nn"
	"github.com/born-ml/strata/tensor"
	"github.com/born-ml/strata/tokenizer"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

type embedOptions struct {
	Encoding string
	Dim      int
	Out      int
	P        float64
	Eps      float64
	MaxLen   int
	Seed     int64
	Fused    bool
	Train    bool
	Workers  int
}

func newEmbedCmd(opts *embedOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed TEXT [TEXT...]",
		Short: "Embed texts and print one pooled vector per text",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmbed(cmd.Context(), *opts, args, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Encoding, "encoding", envconfig.Encoding(), "tiktoken encoding")
	cmd.Flags().IntVar(&opts.Dim, "dim", 64, "embedding dimension")
	cmd.Flags().IntVar(&opts.Out, "out", 16, "output dimension of the linear projection")
	cmd.Flags().Float64VarP(&opts.P, "dropout", "p", nn.DefaultDropout, "dropout probability, applied only with --train")
	cmd.Flags().Float64Var(&opts.Eps, "eps", nn.DefaultLayerNormEps, "layer norm epsilon")
	cmd.Flags().IntVar(&opts.MaxLen, "max-len", 128, "truncate texts to this many tokens (0: no limit)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", envconfig.Seed(), "random seed")
	cmd.Flags().BoolVar(&opts.Fused, "fused", envconfig.Fused(), "use the fused layer norm kernel")
	cmd.Flags().BoolVar(&opts.Train, "train", false, "run in training mode (enables dropout)")
	cmd.Flags().IntVar(&opts.Workers, "workers", envconfig.Workers(), "CPU worker goroutines")
	return cmd
}

func (o embedOptions) validate() error {
	switch {
	case o.Dim <= 0:
		return fmt.Errorf("embed: --dim must be positive, got %d", o.Dim)
	case o.Out <= 0:
		return fmt.Errorf("embed: --out must be positive, got %d", o.Out)
	case !(o.P >= 0 && o.P < 1):
		return fmt.Errorf("embed: --dropout must be in [0, 1), got %v", o.P)
	case !(o.Eps >= 0):
		return fmt.Errorf("embed: --eps must not be negative, got %v", o.Eps)
	case o.MaxLen < 0:
		return fmt.Errorf("embed: --max-len must not be negative, got %d", o.MaxLen)
	}
	return nil
}

type model[B tensor.Backend] struct {
	embed *nn.Embedding[B]
	head  *nn.Sequential[B]
}

func newModel[B tensor.Backend](vocab int, opts embedOptions, rng *rand.Rand, backend B) *model[B] {
	m := &model[B]{
		embed: nn.NewEmbedding(vocab, opts.Dim, rng, backend),
		head: nn.NewSequential[B](
			nn.NewLayerNorm1d(opts.Dim, opts.Eps, opts.Fused, backend),
			nn.NewDropout[B](opts.P, rng),
			nn.NewLinear(opts.Dim, opts.Out, true, rng, backend),
		),
	}
	if !opts.Train {
		nn.Eval(m.embed)
		nn.Eval(m.head)
	}
	return m
}

// forward embeds indices [batch, seq] and returns [batch*seq, out]. Each stage is
// logged at verbosity 2.
func (m *model[B]) forward(ctx context.Context, indices *tensor.Tensor[int32, B]) *tensor.Tensor[float32, B] {
	log := klog.FromContext(ctx)

	shape := indices.Shape()
	x := m.embed.Forward(indices)
	logStage(log, "embedding", x)

	x = x.View(shape[0]*shape[1], m.embed.EmbeddingDim())
	names := []string{"layernorm", "dropout", "linear"}
	for i := 0; i < m.head.Len(); i++ {
		x = m.head.Module(i).Forward(x)
		logStage(log, names[i], x)
	}
	return x
}

func logStage[B tensor.Backend](log klog.Logger, stage string, x *tensor.Tensor[float32, B]) {
	if !log.V(2).Enabled() {
		return
	}
	mean, std := stats(x.Data())
	log.V(2).Info("stage output", "stage", stage, "shape", x.Shape(), "mean", mean, "std", std)
}

// stats returns the mean and population standard deviation of values.
func stats(values []float32) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += float64(v)
	}
	mean /= float64(len(values))
	for _, v := range values {
		d := float64(v) - mean
		std += d * d
	}
	return mean, math.Sqrt(std / float64(len(values)))
}

// meanPool averages the first length rows of each text's [seqLen, dim] block,
// skipping padding positions.
func meanPool(data []float32, batch *tokenizer.Padded, dim int) [][]float32 {
	pooled := make([][]float32, batch.Size)
	for i := range pooled {
		vec := make([]float32, dim)
		n := batch.Lengths[i]
		for pos := 0; pos < n; pos++ {
			row := data[(i*batch.SeqLen+pos)*dim : (i*batch.SeqLen+pos+1)*dim]
			for j, v := range row {
				vec[j] += v
			}
		}
		if n > 0 {
			for j := range vec {
				vec[j] /= float32(n)
			}
		}
		pooled[i] = vec
	}
	return pooled
}

func runEmbed(ctx context.Context, opts embedOptions, texts []string, stdout io.Writer) error {
	log := klog.FromContext(ctx)

	tok, err := tokenizer.NewTikToken(opts.Encoding)
	if err != nil {
		return err
	}

	batch, err := tokenizer.Batch(tok, texts, opts.MaxLen)
	if err != nil {
		return err
	}

	backend := cpu.NewWithWorkers(opts.Workers)
	indices, err := tokenizer.IndexTensor(batch, backend)
	if err != nil {
		return fmt.Errorf("failed to build index tensor: %w", err)
	}

	log.V(1).Info("settings", "env", envconfig.Values())
	log.Info("embedding texts",
		"encoding", tok.Name(),
		"texts", batch.Size,
		"seqLen", batch.SeqLen,
		"dim", opts.Dim,
		"out", opts.Out,
		"seed", opts.Seed,
		"fused", opts.Fused,
		"train", opts.Train,
	)

	rng := rand.New(rand.NewSource(opts.Seed))
	m := newModel(tok.VocabSize(), opts, rng, backend)
	output := m.forward(ctx, indices)

	for i, vec := range meanPool(output.Data(), batch, opts.Out) {
		fmt.Fprintf(stdout, "%d\t%d\t%s\n", i, batch.Lengths[i], formatVector(vec))
	}
	return nil
}

func formatVector(vec []float32) string {
	parts := make([]string, len(vec))
	for i, v := range vec {
		parts[i] = fmt.Sprintf("%.5f", v)
	}
	return strings.Join(parts, " ")
}
