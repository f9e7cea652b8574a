package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewEncodeCommand returns the command printing the hashid of every given ID.
func NewEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode ID...",
		Short: "Print the hashid of each ID",
		Args:  cobra.MinimumNArgs(1),
		RunE:  encode,
	}
}

// NewDecodeCommand returns the command printing the ID of every given hashid.
func NewDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode HASHID...",
		Short: "Print the ID of each hashid",
		Args:  cobra.MinimumNArgs(1),
		RunE:  decode,
	}
}

func encode(cmd *cobra.Command, args []string) error {
	processor, entity, err := newProcessor(cmd)
	if err != nil {
		return err
	}
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", arg, err)
		}
		hash, err := processor.Encode(entity, id)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
	}
	return nil
}

func decode(cmd *cobra.Command, args []string) error {
	processor, entity, err := newProcessor(cmd)
	if err != nil {
		return err
	}
	for _, arg := range args {
		id, err := processor.Decode(entity, arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
