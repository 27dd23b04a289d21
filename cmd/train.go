package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/decisionai/candidate-ranker/internal/features"
	"github.com/decisionai/candidate-ranker/internal/gbm"
	"github.com/decisionai/candidate-ranker/internal/logger"
	"github.com/decisionai/candidate-ranker/internal/preprocess"
	"github.com/decisionai/candidate-ranker/internal/train"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Preprocess the raw exports, engineer features and train the hiring probability model",
	Run: func(cmd *cobra.Command, _ []string) {
		runTrain(cmd)
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().Int("folds", defaultFolds, "number of grouped cross-validation folds")

	viper.BindPFlag("train.folds", trainCmd.Flags().Lookup("folds"))
}

func runTrain(_ *cobra.Command) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	runID := uuid.NewString()
	zlog = logger.WithRunFields(zlog, runID, config.Model.Path)

	zlog.Info("starting a training run", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	zlog.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	paths := preprocess.Paths{
		Vagas:      config.Data.Resolve(config.Data.Vagas),
		Prospects:  config.Data.Resolve(config.Data.Prospects),
		Applicants: config.Data.Resolve(config.Data.Applicants),
	}

	rows, err := preprocess.Preprocess(ctx, paths, zlog)
	if err != nil {
		zlog.Fatal("preprocessing raw exports", zap.Error(err))
	}

	table := features.Engineer(rows)
	zlog.Info("engineered feature table",
		zap.Int("rows", table.Len()),
		zap.Int("columns", len(table.Columns)),
	)

	cleanCSV := config.Data.Resolve(config.Data.CleanCSV)
	if err := table.WriteCSV(cleanCSV); err != nil {
		zlog.Fatal("writing the clean feature table", zap.Error(err))
	}
	zlog.Info("wrote clean feature table", zap.String("path", cleanCSV))

	result, err := train.Run(table, train.Config{
		Folds:  config.Train.Folds,
		Params: gbm.DefaultParams(),
	}, zlog)
	if err != nil {
		zlog.Fatal("training failed", zap.Error(err))
	}

	if err := train.Save(result.Best, config.Model.Path); err != nil {
		zlog.Fatal("persisting the best model", zap.Error(err))
	}

	zlog.Info("training run finished",
		zap.Int("best_fold", result.BestFold),
		zap.Float64("mean_auc", result.MeanAUC),
		zap.Float64("std_auc", result.StdAUC),
		zap.Float64("mean_average_precision", result.MeanAP),
		zap.Float64("std_average_precision", result.StdAP),
	)

	for _, imp := range result.Best.FeatureImportances() {
		zlog.Debug("feature importance",
			zap.String("feature", imp.Feature),
			zap.Float64("gain", imp.Gain),
		)
	}
}
