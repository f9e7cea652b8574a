// Package cli contains the commands of the offline hashid binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/danilovkiri/dk_go_hashids/internal/config"
	"github.com/danilovkiri/dk_go_hashids/internal/service/hashider/v1"
	"github.com/danilovkiri/dk_go_hashids/internal/storage/inmemory"
)

const (
	configFlag = "config"
	entityFlag = "entity"
)

// NewRootCommand returns the hashid command with all children attached. Hashid parameters are
// read from HASHID_* environment variables, or from the file named by --config.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "hashid",
		Short: "Convert integer IDs to hashids and back",
		Long: `Convert integer IDs to salted hashids and back without a running server.

Parameters are read from HASHID_SALT, HASHID_LENGTH, HASHID_ALPHABET, HASHID_PREFIX,
HASHID_SUFFIX, HASHID_SEPARATOR and HASHID_ALGORITHM, or from a YAML/JSON config file.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringP(configFlag, "c", "", "config file path")
	root.PersistentFlags().StringP(entityFlag, "e", "", "entity whose overrides apply")
	root.AddCommand(NewEncodeCommand(), NewDecodeCommand(), NewVersionCommand())
	return root
}

// newProcessor builds a hashider from the configuration the command flags point at.
func newProcessor(cmd *cobra.Command) (*hashider.Hashider, string, error) {
	path, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, "", err
	}
	entity, err := cmd.Flags().GetString(entityFlag)
	if err != nil {
		return nil, "", err
	}
	var cfg *config.Config
	if path != "" {
		cfg, err = config.NewFileConfiguration(path)
	} else {
		cfg, err = config.NewDefaultConfiguration()
	}
	if err != nil {
		return nil, "", err
	}
	processor, err := hashider.InitHashider(inmemory.InitStorage(), &cfg.HashidConfig)
	if err != nil {
		return nil, "", err
	}
	return processor, entity, nil
}
