// Command pinn trains a physics-informed neural network for the
// transport equation du/dx - 2*du/dt - u = 0 with boundary condition
// u(x, 0) = 6*exp(-3x).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/pinn-ml/pinn/internal/autodiff"
	"github.com/pinn-ml/pinn/internal/backend/cpu"
	"github.com/pinn-ml/pinn/internal/metrics"
	"github.com/pinn-ml/pinn/internal/pinn"
	"github.com/pinn-ml/pinn/internal/trainer"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pinn",
		Short: "Physics-informed neural network trainer",
		Long: `pinn trains a fully-connected tanh network u(x, t) to satisfy
du/dx - 2*du/dt - u = 0 on a rectangular domain with the boundary
condition u(x, 0) = 6*exp(-3x), using automatic differentiation to
penalize the PDE residual at randomly sampled collocation points.`,
		SilenceUsage: true,
	}

	root.AddCommand(newTrainCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pinn %s\n", version)
		},
	}
}

func newTrainCmd() *cobra.Command {
	cfg := trainer.DefaultConfig()
	var xMin, xMax, tMin, tMax float32 = 0, 2, 0, 1

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Run the training loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, err := pinn.NewDomain(
				pinn.Interval{Lo: xMin, Hi: xMax},
				pinn.Interval{Lo: tMin, Hi: tMax},
			)
			if err != nil {
				return err
			}

			backend := autodiff.New(cpu.New())

			tr, err := trainer.New(cfg, domain, backend, nil)
			if err != nil {
				return err
			}

			logger := log.New(os.Stdout, "", log.LstdFlags)
			tr.SetSink(metrics.NewLogSink(logger, tr.RunID()))

			logger.Printf("run=%s training: %d epochs, batch %d, lr %g, %s, net %dx%d",
				tr.RunID(), cfg.Epochs, cfg.BatchSize, cfg.LearningRate,
				cfg.Optimizer, cfg.HiddenLayers, cfg.Width)

			final, err := tr.Run()
			if err != nil {
				return err
			}

			logger.Printf("run=%s done: loss=%.6e pde=%.6e boundary=%.6e",
				tr.RunID(), final.Total, final.PDE, final.Boundary)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Epochs, "epochs", cfg.Epochs, "number of optimization steps")
	flags.IntVar(&cfg.BatchSize, "batch-size", cfg.BatchSize, "collocation points per step")
	flags.Float64Var(&cfg.LearningRate, "lr", cfg.LearningRate, "learning rate")
	flags.StringVar(&cfg.Optimizer, "optimizer", cfg.Optimizer, "optimizer: adam or sgd")
	flags.IntVar(&cfg.HiddenLayers, "hidden-layers", cfg.HiddenLayers, "number of hidden layers")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "hidden layer width")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flags.Float32Var(&xMin, "x-min", xMin, "domain lower bound in x")
	flags.Float32Var(&xMax, "x-max", xMax, "domain upper bound in x")
	flags.Float32Var(&tMin, "t-min", tMin, "domain lower bound in t")
	flags.Float32Var(&tMax, "t-max", tMax, "domain upper bound in t")

	return cmd
}
