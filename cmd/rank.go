package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/decisionai/candidate-ranker/internal/dataset"
	"github.com/decisionai/candidate-ranker/internal/filtering"
	"github.com/decisionai/candidate-ranker/internal/logger"
	"github.com/decisionai/candidate-ranker/internal/predict"
	"github.com/decisionai/candidate-ranker/internal/train"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank the candidates of a job opening by predicted hiring probability",
	Run: func(cmd *cobra.Command, _ []string) {
		runRank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().String("vaga", "", "job opening id to rank candidates for (prompted when unset)")
	rankCmd.Flags().Bool("english-ok", false, "keep only candidates meeting the opening's English level")
	rankCmd.Flags().Bool("seniority-ok", false, "keep only candidates at or above the opening's seniority")
	rankCmd.Flags().Bool("sap", false, "keep only candidates with SAP in their skill set")
	rankCmd.Flags().Int("min-tech-overlap", 0, "minimum shared technical terms with the opening")
	rankCmd.Flags().Int("top", 0, "print only the top N candidates (0 prints all)")
}

func runRank(cmd *cobra.Command) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	cleanCSV := config.Data.Resolve(config.Data.CleanCSV)
	table, err := dataset.ReadCSV(cleanCSV)
	if err != nil {
		zlog.Fatal("loading the clean feature table",
			zap.Error(err),
			zap.String("hint", "run 'candidate-ranker train' first to produce it"),
		)
	}

	model, err := train.Load(config.Model.Path)
	if err != nil {
		zlog.Fatal("loading the model artifact",
			zap.Error(err),
			zap.String("hint", "run 'candidate-ranker train' first to produce it"),
		)
	}

	vagaID, err := selectVaga(cmd, table)
	if err != nil {
		zlog.Fatal("selecting a job opening", zap.Error(err))
	}

	filtered, err := filtering.Run(prepareFilters(cmd, vagaID), table, zlog)
	if err != nil {
		zlog.Fatal("filtering candidates", zap.Error(err))
	}

	if filtered.Len() == 0 {
		zlog.Info("exiting", zap.String("reason", "no candidates left after filters"))
		return
	}

	ranked, err := predict.Rank(model, filtered)
	if err != nil {
		zlog.Fatal("ranking candidates", zap.Error(err))
	}

	top, _ := cmd.Flags().GetInt("top")
	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}

	fmt.Printf("Candidates for vaga %s, best first:\n", vagaID)
	for i, r := range ranked {
		fmt.Printf("%3d. %-12s %6.2f%%\n", i+1, r.Key.CodigoCandidato, r.Probability*100)
	}
}

// selectVaga resolves the job opening to rank: the --vaga flag when
// given, an interactive prompt over the openings present in the table
// otherwise.
func selectVaga(cmd *cobra.Command, table *dataset.Table) (string, error) {
	vagaID, _ := cmd.Flags().GetString("vaga")
	if vagaID != "" {
		return vagaID, nil
	}

	ids := table.VagaIDs()
	if len(ids) == 0 {
		return "", fmt.Errorf("the feature table has no job openings")
	}

	prompt := promptui.Select{
		Label: "Choose a job opening and press ENTER",
		Items: ids,
	}

	_, selected, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return selected, nil
}

func prepareFilters(cmd *cobra.Command, vagaID string) []filtering.Filter {
	filters := []filtering.Filter{filtering.NewVaga(vagaID)}

	if ok, _ := cmd.Flags().GetBool("english-ok"); ok {
		filters = append(filters, filtering.NewEnglishOK())
	}
	if ok, _ := cmd.Flags().GetBool("seniority-ok"); ok {
		filters = append(filters, filtering.NewSeniorityOK())
	}
	if ok, _ := cmd.Flags().GetBool("sap"); ok {
		filters = append(filters, filtering.NewSapKnown())
	}
	if min, _ := cmd.Flags().GetInt("min-tech-overlap"); min > 0 {
		filters = append(filters, filtering.NewMinTechOverlap(min))
	}

	return filters
}
