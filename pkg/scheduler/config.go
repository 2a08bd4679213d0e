package scheduler

import (
	"fmt"

	"github.com/Scusemua/go-utils/config"
)

// Config is the scheduler's build-time configuration, turned into a
// runtime struct so it can be constructed programmatically or parsed from
// flags/JSON/YAML via the same tagged-struct convention the rest of the
// reference corpus uses for its options structs.
type Config struct {
	config.LoggerOptions

	NumberOfWorkers  int    `name:"number_of_workers" json:"number_of_workers" yaml:"number_of_workers" description:"Size of the worker pool; selects the threaded build."`
	MaxReactionLevel uint32 `name:"max_reaction_level" json:"max_reaction_level" yaml:"max_reaction_level" description:"Upper bound on precedence levels."`
	Federated        bool   `name:"federated" json:"federated" yaml:"federated" description:"Enables the federated same-level enqueue protection and logical_tag_complete callback."`
}

// Validate implements config.ValidatableOptions, matching the Options
// contract the rest of the corpus satisfies so Config can go through
// config.ValidateOptions the same way every other component's options
// struct does.
func (c *Config) Validate() error {
	if c.NumberOfWorkers <= 0 {
		return fmt.Errorf("number_of_workers must be positive, got %d", c.NumberOfWorkers)
	}
	return nil
}
