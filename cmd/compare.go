package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spiffcs/timewarp/internal/compare"
	"github.com/spiffcs/timewarp/internal/service"
)

// NewCmdCompare creates the subcommand for a single comparison operator.
func NewCmdCompare(op compare.Operator, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   op.String(),
		Short: op.Description(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, op, opts)
		},
	}
}

func runCompare(cmd *cobra.Command, op compare.Operator, opts *Options) error {
	if err := requireOffset(cmd); err != nil {
		return err
	}
	s, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}

	svc := service.New(
		service.WithOutput(cmd.OutOrStdout()),
		service.WithStdin(cmd.InOrStdin()),
	)
	return svc.Run(service.Request{
		RefTime:   opts.RefTime,
		Offset:    opts.Offset,
		Sample:    opts.CompTimeOrFile,
		HasSample: cmd.Flags().Changed("comp-timeorfile"),
		Format:    s.format,
		Operator:  op,
		KeepGoing: s.keepGoing,
	})
}
