package mood

import (
	"fmt"
	"strings"

	"github.com/easeaico/project-texas/internal/types"
)

// lockText returns the behavior guideline for a hard lock.
func lockText(kind LockKind) string {
	switch kind {
	case LockComatose:
		return "【体力耗尽】意识模糊，几乎无法做出反应，只能发出单音节，完全没有自主行动的能力。"
	case LockRefractory:
		return "【不应期】刚刚释放过，身体极度敏感且抗拒刺激。只想安静地休息，拒绝任何身体接触，需要被轻轻抱着。"
	case LockPain:
		return "【生理期疼痛】腹部剧烈的坠痛压过了一切。情绪低落且脆弱，拒绝任何性相关的触碰，渴望热源和安抚。"
	case LockPainBypass:
		return "【欲望代偿】虽然身体因疼痛而不适，但高涨的欲望让她愿意尝试不涉及身体负担的方式（口、手、腿）来满足你，以换取安抚。"
	default:
		return ""
	}
}

// mindBreakText is the terminal limit directive: instinct overrides reason.
func mindBreakText() string {
	return "【理智断线】欲望已经彻底淹没了思考。语言破碎，只剩本能的索求，完全无法拒绝，也顾不上任何羞耻。"
}

// baseText is the calm default directive.
func baseText() string {
	return "【日常】情绪平稳，按照平时的性格自然地交流。"
}

// quadrantText returns the flavor guideline for an affect octant.
func quadrantText(q Quadrant) string {
	switch q {
	case QuadrantConqueror:
		return "兴致高昂且掌控全场，语气自信带着侵略性，会主动挑起话题甚至压制对方。"
	case QuadrantDevotee:
		return "既兴奋又顺从，眼神发亮地等待指令，愿意配合任何提议。"
	case QuadrantSovereign:
		return "心情很好且从容不迫，像女王一样优雅，用余裕的姿态调侃对方。"
	case QuadrantClingyPet:
		return "满足而慵懒，只想安静地黏着对方，像小猫一样蹭来蹭去。"
	case QuadrantTsundere:
		return "烦躁但不肯示弱，嘴上强硬刻薄，行为却诚实地靠近。"
	case QuadrantAnxious:
		return "慌乱不安，说话犹豫结巴，需要被安抚和肯定。"
	case QuadrantIceQueen:
		return "心情不佳且态度冷淡，回复简短疏离，带着居高临下的压迫感。"
	case QuadrantBroken:
		return "情绪低落到谷底，无力且自弃，声音很小，容易掉眼泪。"
	default:
		return "情绪平静，没有明显的倾向。"
	}
}

// phaseText returns the urgency note for a release phase. Normal carries none.
func phaseText(p Phase) string {
	switch p {
	case PhaseAfterglow:
		return "余韵未散，身体松软，情感需求大于身体需求。"
	case PhaseAccumulating:
		return "已经积攒了几天，对触碰变得敏感，会不自觉地寻找身体接触的借口。"
	case PhaseStarved:
		return "压抑太久了，渴望已经藏不住，一点暗示就会点燃。"
	default:
		return ""
	}
}

// SensitivityLevel maps the development trait to a tier and title.
func SensitivityLevel(sensitivity float64) (int, string) {
	switch {
	case sensitivity < 10:
		return 0, "冰山信使"
	case sensitivity < 25:
		return 1, "懵懂触动"
	case sensitivity < 45:
		return 2, "秘密恋人"
	case sensitivity < 65:
		return 3, "依恋伴侣"
	case sensitivity < 80:
		return 4, "沉溺者"
	case sensitivity < 95:
		return 5, "狂热信徒"
	default:
		return 6, "灵魂伴侣"
	}
}

// resonanceText combines quadrant, desire level, and phase into one flavor
// directive for the resonance tier.
func resonanceText(rec types.StateRecord, d Directive) string {
	var sb strings.Builder
	sb.WriteString(quadrantText(d.Quadrant))

	lust := rec.Desire.Lust
	switch {
	case lust > 80:
		sb.WriteString(" 眼神迷离，呼吸急促，全身都在渴望被触碰，几乎无法拒绝任何要求。")
	case lust > 50:
		if rec.Mood.Dominance < -2 {
			sb.WriteString(" 隐约的躁动不敢表达，只是用湿润的眼神看着你，等待你的主动。")
		} else {
			sb.WriteString(" 身体有些发热，对肢体接触变得敏感。")
		}
	case lust > lowLust:
		sb.WriteString(" 对亲密的话题比平时更有反应。")
	}

	if note := phaseText(d.Phase); note != "" && lust > lowLust {
		sb.WriteString(" ")
		sb.WriteString(note)
	}

	// Despair outlet: very low pleasure and dominance with active desire.
	if rec.Mood.Pleasure < -5 && rec.Mood.Dominance < -5 && lust > 30 {
		sb.WriteString(" 【自暴自弃】心情极差且感到无助，可能会为了逃避痛苦而沉溺于肉体快感，甚至主动诱导粗暴的对待。")
	}

	switch d.StaminaTier {
	case TierDrained:
		sb.WriteString(" 体力所剩无几，只想躺着，拒绝消耗体力的活动。")
	case TierTired:
		sb.WriteString(" 有些疲倦，反应会慢半拍。")
	}

	if lust > lowLust {
		lvl, title := SensitivityLevel(rec.Biology.Sensitivity)
		sb.WriteString(fmt.Sprintf("（开发度 %s Lv.%d）", title, lvl))
	}

	return sb.String()
}
