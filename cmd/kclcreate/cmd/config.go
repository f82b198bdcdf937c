package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/gayfrogog/kclcreate/buildsettings"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with default
values.

If FILE is not provided, 'kclcreate.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "kclcreate.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}

		buf, err := yaml.Marshal(buildsettings.NewSettings())
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if err := ioutil.WriteFile(path, buf, 0644); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
