package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags shared by all commands
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "debug flag")
	flags.String("config", "bricks.yaml", "config file")
	flags.String("dotenv", ".env.local", "the dotenv file you want to load")
}
