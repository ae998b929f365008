package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/ksuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ssargent/charseq/pkg/api"
	"github.com/ssargent/charseq/pkg/text"
)

func parseID(s string) (ksuid.KSUID, error) {
	id, err := ksuid.Parse(s)
	if err != nil {
		return ksuid.Nil, errors.Wrapf(err, "invalid text id %q", s)
	}
	return id, nil
}

func newPutCmd() *cobra.Command {
	putCmd := &cobra.Command{
		Use:   "put <text>",
		Short: "Store a text",
		Long: `Store a text and print its id. With --id the existing text is replaced.

Example:
  charseq put "hello"
  charseq put "goodbye" --id 2xYw...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawID, _ := cmd.Flags().GetString("id")
			seq := text.FromString(args[0])

			return withStore(cmd, func(store api.TextStore) error {
				if rawID != "" {
					id, err := parseID(rawID)
					if err != nil {
						return err
					}
					if err := store.Update(id, seq); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), id)
					return nil
				}

				id, err := store.Create(seq)
				if err != nil {
					return err
				}
				logrus.WithField("id", id.String()).Debug("text stored")
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}
	putCmd.Flags().String("id", "", "Replace the text stored under this id")
	return putCmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print a stored text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(store api.TextStore) error {
				seq, err := store.Read(id)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), seq)
				return nil
			})
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withStore(cmd, func(store api.TextStore) error {
				if err := store.Delete(id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
				return nil
			})
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored text ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(store api.TextStore) error {
				ids, err := store.List()
				if err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			})
		},
	}
}
