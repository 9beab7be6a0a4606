// Package prompt renders directives into generation-step conditioning text.
package prompt

import (
	"fmt"
	"strings"

	"github.com/easeaico/project-texas/internal/mood"
	"github.com/easeaico/project-texas/internal/types"
)

// BuildStatusInjection renders the realtime status block appended to the
// system prompt. It is a pure function of the record and its directive.
func BuildStatusInjection(rec types.StateRecord, d mood.Directive) string {
	var sb strings.Builder

	sb.WriteString("\n\n## [System Status - Realtime]\n")
	sb.WriteString(fmt.Sprintf("- **Physical**: Day %d，体力 %s", d.CycleDay, staminaLabel(d.StaminaTier)))
	if d.PainLevel > 0 {
		sb.WriteString(fmt.Sprintf("，疼痛 %.1f", d.PainLevel))
	}
	sb.WriteString(fmt.Sprintf("，阶段 %s\n", phaseLabel(d.Phase)))
	sb.WriteString(fmt.Sprintf("- **Mood**: %s (P:%.1f, A:%.1f, D:%.1f)\n",
		d.Quadrant, rec.Mood.Pleasure, rec.Mood.Arousal, rec.Mood.Dominance))

	if rec.Desire.Lust > 30 || rec.Biology.Sensitivity > 20 {
		lvl, title := mood.SensitivityLevel(rec.Biology.Sensitivity)
		sb.WriteString(fmt.Sprintf("- **Desire**: [%s Lv.%d] Lust:%.0f%%\n", title, lvl, rec.Desire.Lust))
	}

	sb.WriteString(fmt.Sprintf("- **Directive** (%s): %s\n", d.Level, d.Text))
	return sb.String()
}

func staminaLabel(tier mood.StaminaTier) string {
	switch tier {
	case mood.TierComatose:
		return "耗尽"
	case mood.TierDrained:
		return "极度疲惫"
	case mood.TierTired:
		return "疲倦"
	default:
		return "充沛"
	}
}

func phaseLabel(p mood.Phase) string {
	switch p {
	case mood.PhaseRefractory:
		return "不应期"
	case mood.PhaseAfterglow:
		return "余韵"
	case mood.PhaseAccumulating:
		return "积攒"
	case mood.PhaseStarved:
		return "饥渴"
	default:
		return "平稳"
	}
}
