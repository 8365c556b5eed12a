package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntauth/lexorank"
)

var errNothingBetween = errors.New("ranks are equal, there is nothing between them")

// print writes one result per line, honouring --rank-only.
func (c *cli) print(cmd *cobra.Command, ranks ...lexorank.LexoRank) {
	for _, rk := range ranks {
		if c.rankOnly {
			fmt.Fprintln(cmd.OutOrStdout(), rk.Rank())
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), rk)
	}
}

func (c *cli) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <lexorank>",
		Short: "Validate a LexoRank and show its parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rk, err := lexorank.Parse(args[0])
			if err != nil {
				return err
			}
			c.logger.Debug("Parsed lexorank.", "input", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "bucket: %s\nrank:   %s\n", rk.Bucket(), rk.Rank())
			return nil
		},
	}
}

func (c *cli) nextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next <lexorank>",
		Short: "Print the successor of a LexoRank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rk, err := lexorank.Parse(args[0])
			if err != nil {
				return err
			}
			next := rk.Next()
			c.logger.Debug("Computed successor.", "input", rk, "output", next)
			c.print(cmd, next)
			return nil
		},
	}
}

func (c *cli) prevCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prev <lexorank>",
		Short: "Print the predecessor of a LexoRank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rk, err := lexorank.Parse(args[0])
			if err != nil {
				return err
			}
			prev := rk.Prev()
			c.logger.Debug("Computed predecessor.", "input", rk, "output", prev)
			c.print(cmd, prev)
			return nil
		},
	}
}

func (c *cli) betweenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "between <lexorank> <lexorank>",
		Short: "Print a LexoRank that sorts between two others",
		Long: `Print a LexoRank whose rank sorts strictly between the ranks of the two
arguments. The result is placed in the bucket of the first argument.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args)
			if err != nil {
				return err
			}
			if a.Bucket() != b.Bucket() {
				c.logger.Warn("Combining ranks from different buckets.",
					"left", a, "right", b, "resultBucket", a.Bucket().Value())
			}
			mid, ok := a.Between(b)
			if !ok {
				return errNothingBetween
			}
			c.logger.Debug("Computed midpoint.", "left", a, "right", b, "output", mid)
			c.print(cmd, mid)
			return nil
		},
	}
}

func (c *cli) spreadCmd() *cobra.Command {
	var count uint
	cmd := &cobra.Command{
		Use:   "spread <lexorank> <lexorank>",
		Short: "Print evenly spread LexoRanks between two others",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parsePair(args)
			if err != nil {
				return err
			}
			ranks, ok := lexorank.NRanksBetween(a.Rank(), b.Rank(), count)
			if !ok {
				return errNothingBetween
			}
			c.logger.Debug("Spread ranks.", "left", a, "right", b, "count", count)
			out := make([]lexorank.LexoRank, 0, len(ranks))
			for _, r := range ranks {
				out = append(out, lexorank.New(a.Bucket(), r))
			}
			c.print(cmd, out...)
			return nil
		},
	}
	cmd.Flags().UintVarP(&count, "count", "n", 1, "Number of ranks to generate")
	return cmd
}

func (c *cli) rotateCmd() *cobra.Command {
	var backward bool
	cmd := &cobra.Command{
		Use:   "rotate <lexorank>",
		Short: "Move a LexoRank into the next bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rk, err := lexorank.Parse(args[0])
			if err != nil {
				return err
			}
			rotated := rk.InNextBucket()
			if backward {
				rotated = rk.InPrevBucket()
			}
			c.logger.Debug("Rotated bucket.", "input", rk, "output", rotated, "backward", backward)
			c.print(cmd, rotated)
			return nil
		},
	}
	cmd.Flags().BoolVar(&backward, "backward", false, "Move into the previous bucket instead")
	return cmd
}

func (c *cli) floatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "float <lexorank>",
		Short: "Print the rank of a LexoRank as an approximate fraction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rk, err := lexorank.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rk.Rank().Float64Approx())
			return nil
		},
	}
}

func parsePair(args []string) (lexorank.LexoRank, lexorank.LexoRank, error) {
	a, err := lexorank.Parse(args[0])
	if err != nil {
		return lexorank.LexoRank{}, lexorank.LexoRank{}, err
	}
	b, err := lexorank.Parse(args[1])
	if err != nil {
		return lexorank.LexoRank{}, lexorank.LexoRank{}, err
	}
	return a, b, nil
}
