package cmd

import (
	"log"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "candidate-ranker"

	defaultFolds = 5
)

type Config struct {
	Data  *DataConfig  `mapstructure:"data" validate:"required"`
	Model *ModelConfig `mapstructure:"model" validate:"required"`
	Train TrainConfig  `mapstructure:"train"`
}

// DataConfig locates the raw recruitment exports and the engineered
// feature table. Relative paths are resolved against Dir when it is set.
type DataConfig struct {
	Dir        string `mapstructure:"dir"`
	Vagas      string `mapstructure:"vagas" validate:"required"`
	Prospects  string `mapstructure:"prospects" validate:"required"`
	Applicants string `mapstructure:"applicants" validate:"required"`
	CleanCSV   string `mapstructure:"clean-csv" validate:"required"`
}

type ModelConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type TrainConfig struct {
	Folds int `mapstructure:"folds" validate:"gte=2"`
}

// Resolve joins a configured path with the data directory unless the
// path is already absolute.
func (d *DataConfig) Resolve(path string) string {
	if d.Dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(d.Dir, path)
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "candidate-ranker trains a hiring probability model over recruitment funnel exports and ranks candidates per job opening",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("data.dir", "RANKER_DATA_DIR"); err != nil {
		log.Fatalf("binding RANKER_DATA_DIR environment variable: %v", err)
	}

	viper.SetDefault("train.folds", defaultFolds)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is candidate-ranker.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for train and rank. If there is no config, we can skip initialization
	if trainCmd.CalledAs() == "" && rankCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}
