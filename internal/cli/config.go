package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// config is the contents of a --config file.
//
//	precision = 6
//	summary = true
type config struct {
	Precision int  `toml:"precision"`
	Summary   bool `toml:"summary"`
}

// options holds the persistent flags shared by all commands.
type options struct {
	configPath string // TOML file with defaults (none if empty)
	precision  int    // decimal digits in the output
	summary    bool   // print Summary instead of Format
	verbose    bool   // debug logging
}

// load applies the config file, if any, to every option that wasn't set
// on the command line, and validates the result.
func (o *options) load(cmd *cobra.Command, logger *log.Logger) error {
	if o.configPath != "" {
		var cfg config
		md, err := toml.DecodeFile(o.configPath, &cfg)
		if err != nil {
			return fmt.Errorf("read config %s: %w", o.configPath, err)
		}
		for _, key := range md.Undecoded() {
			logger.Warn("Ignoring unknown config key", "file", o.configPath, "key", key.String())
		}
		if md.IsDefined("precision") && !flagChanged(cmd, "precision") {
			o.precision = cfg.Precision
		}
		if md.IsDefined("summary") && !flagChanged(cmd, "summary") {
			o.summary = cfg.Summary
		}
		logger.Debug("Loaded config", "file", o.configPath, "precision", o.precision, "summary", o.summary)
	}

	if o.precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", o.precision)
	}
	return nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}
