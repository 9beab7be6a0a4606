package callback

import (
	"log/slog"
	"strings"
	"time"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/easeaico/project-texas/internal/mood"
	"github.com/easeaico/project-texas/internal/utils"
)

// NewStateCallback parses the trailing state tag from model output, applies
// it through the mood service, and rewrites the reply so the user never
// sees the tag or the release marker.
func NewStateCallback(service *mood.Service) llmagent.AfterModelCallback {
	return func(ctx agent.CallbackContext, resp *model.LLMResponse, err error) (*model.LLMResponse, error) {
		if err != nil {
			return nil, err
		}
		if resp == nil || resp.Content == nil {
			return nil, nil
		}
		if resp.Partial {
			return nil, nil
		}

		text := strings.TrimSpace(utils.ExtractContentText(resp.Content))
		if text == "" {
			return nil, nil
		}

		tag, release, cleaned, found := utils.ExtractStateTag(text)
		if !found && !release {
			return nil, nil
		}

		if service != nil {
			batch := mood.DeltaBatch{Release: release}
			if found {
				batch.Deltas = []mood.Delta{{
					Pleasure:     tag.Pleasure,
					Arousal:      tag.Arousal,
					Dominance:    tag.Dominance,
					HasDominance: tag.HasDominance,
					Lust:         tag.Lust,
				}}
			}
			if _, updateErr := service.ApplyTurn(ctx, batch, time.Now()); updateErr != nil {
				slog.Error("failed to apply state deltas", "error", updateErr.Error())
			}
		}

		resp.Content = genai.NewContentFromText(cleaned, "assistant")
		return resp, nil
	}
}
