package sentiment

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

// DefaultTransformerModel is the ONNX export of the SST-2 DistilBERT
// sentiment classifier.
const DefaultTransformerModel = "KnightsAnalytics/distilbert-base-uncased-finetuned-sst-2-english"

// TransformerScorer scores text with an ONNX classification pipeline. The
// winning label's confidence becomes a signed polarity: POSITIVE keeps the
// sign, NEGATIVE flips it, anything else is 0.
type TransformerScorer struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

// NewTransformerScorer loads the classifier from modelDir, downloading
// modelName into it first when no local copy exists.
func NewTransformerScorer(modelName, modelDir string) (*TransformerScorer, error) {
	if modelName == "" {
		modelName = DefaultTransformerModel
	}

	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}

	modelPath, err := ensureModel(modelName, modelDir)
	if err != nil {
		return nil, err
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentClassificationPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize classification pipeline: %w", err)
	}

	slog.Info("[TransformerScorer] Pipeline ready", slog.String("model", modelPath))

	return &TransformerScorer{session: session, pipeline: pipeline}, nil
}

func ensureModel(modelName, modelDir string) (string, error) {
	localPath := modelDir + "/" + modelName

	if _, err := os.Stat(localPath); err == nil {
		slog.Info("[TransformerScorer] Using existing model", slog.String("path", localPath))
		return localPath, nil
	}

	slog.Info("[TransformerScorer] Model not found, downloading...",
		slog.String("model", modelName))

	modelPath, err := hugot.DownloadModel(modelName, modelDir, hugot.NewDownloadOptions())
	if err != nil {
		return "", fmt.Errorf("failed to download model: %w", err)
	}
	slog.Info("[TransformerScorer] Model downloaded successfully", slog.String("path", modelPath))

	return modelPath, nil
}

func (t *TransformerScorer) Score(text string) float64 {
	return t.ScoreBatch([]string{text})[0]
}

// ScoreBatch runs one pipeline pass over texts. A failed pass scores the
// whole batch 0.0 so callers degrade to neutral instead of erroring.
func (t *TransformerScorer) ScoreBatch(texts []string) []float64 {
	scores := make([]float64, len(texts))

	output, err := t.pipeline.RunPipeline(texts)
	if err != nil {
		slog.Warn("[TransformerScorer] Classification failed",
			slog.Int("batch_size", len(texts)),
			slog.String("error", err.Error()))
		return scores
	}

	for i, raw := range output.GetOutput() {
		if i >= len(scores) {
			break
		}

		predictions, ok := raw.([]pipelines.ClassificationOutput)
		if !ok || len(predictions) == 0 {
			slog.Warn("[TransformerScorer] Unexpected output format from Hugot")
			continue
		}

		best := predictions[0]
		switch best.Label {
		case "POSITIVE", "LABEL_1":
			scores[i] = float64(best.Score)
		case "NEGATIVE", "LABEL_0":
			scores[i] = -float64(best.Score)
		}
	}

	return scores
}

func (t *TransformerScorer) Close() {
	if t.session != nil {
		t.session.Destroy()
	}
}
