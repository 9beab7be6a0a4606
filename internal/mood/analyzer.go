package mood

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/easeaico/project-texas/internal/utils"
)

// Analyzer derives a delta batch from a conversation turn when the main
// generation call did not emit a state tag itself.
type Analyzer struct {
	model model.LLM
}

// NewAnalyzer returns an Analyzer.
func NewAnalyzer(m model.LLM) *Analyzer {
	return &Analyzer{model: m}
}

// Analyze asks the model for a state tag describing the turn's impact and
// parses it into a batch. An empty turn yields an empty batch.
func (a *Analyzer) Analyze(ctx context.Context, text string) (DeltaBatch, error) {
	if a == nil || a.model == nil {
		return DeltaBatch{}, fmt.Errorf("state analyzer not configured")
	}

	if strings.TrimSpace(text) == "" {
		return DeltaBatch{}, nil
	}

	system := `你是状态分析器。评估这段对话对角色情绪的影响，仅返回一个标签，` +
		`格式为 [P±x A±y D±z L±w]，其中 D 和 L 可省略；若触发释放则额外返回 [RELEASE]。不要输出其他内容。`
	req := &model.LLMRequest{
		Contents: []*genai.Content{
			genai.NewContentFromText(system, "system"),
			genai.NewContentFromText(text, "user"),
		},
	}

	seq := a.model.GenerateContent(ctx, req, false)
	var resp *model.LLMResponse
	var err error
	seq(func(r *model.LLMResponse, e error) bool {
		resp = r
		err = e
		return false
	})
	if err != nil {
		return DeltaBatch{}, err
	}

	raw := utils.ExtractContentText(respContent(resp))
	tag, release, _, found := utils.ExtractStateTag(raw)

	batch := DeltaBatch{Release: release}
	if found {
		batch.Deltas = []Delta{{
			Pleasure:     tag.Pleasure,
			Arousal:      tag.Arousal,
			Dominance:    tag.Dominance,
			HasDominance: tag.HasDominance,
			Lust:         tag.Lust,
		}}
	}
	return batch, nil
}

func respContent(resp *model.LLMResponse) *genai.Content {
	if resp == nil {
		return nil
	}
	return resp.Content
}
