package preprocess

import (
	"context"

	"go.uber.org/zap"

	"github.com/decisionai/candidate-ranker/internal/logger"
)

// rawStatusLogLimit bounds the raw funnel status text in debug logs; the
// field is free text and occasionally carries whole comment paragraphs.
const rawStatusLogLimit = 60

// Preprocess runs the full raw-to-joined pipeline: load the three JSON
// documents, flatten them, join and clean. Row counts are logged per
// stage so a shrinking dataset is visible immediately.
func Preprocess(ctx context.Context, paths Paths, log *zap.Logger) ([]JoinedRow, error) {
	raw, err := LoadRaw(ctx, paths)
	if err != nil {
		return nil, err
	}

	vagas := FlattenVagas(raw.Vagas)
	prospects := FlattenProspects(raw.Prospects)
	applicants := FlattenApplicants(raw.Applicants)

	log.Info("flattened raw data",
		zap.Int("vagas", len(vagas)),
		zap.Int("prospects", len(prospects)),
		zap.Int("applicants", len(applicants)),
	)

	joined := Join(prospects, vagas, applicants)
	cleaned := Clean(joined)

	log.Info("joined and cleaned",
		zap.Int("joined_rows", len(joined)),
		zap.Int("rows_after_dedup", len(cleaned)),
	)

	logFunnelStatuses(cleaned, log)

	return cleaned, nil
}

// logFunnelStatuses debug-logs every distinct raw funnel status with its
// row count. Status mapping downstream is substring-based, so seeing the
// raw values is the fastest way to diagnose a surprising label balance.
func logFunnelStatuses(rows []JoinedRow, log *zap.Logger) {
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}

	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.Prospect.SituacaoCandidato]++
	}
	for _, s := range sortedKeys(counts) {
		log.Debug("funnel status seen",
			zap.String("situacao", logger.TruncateForLog(s, rawStatusLogLimit)),
			zap.Int("rows", counts[s]),
		)
	}
}
