package feedback

import "testing"

func TestPrimaryTriggerPrefersLongerTriggers(t *testing.T) {
	classifier := NewThemeClassifier()

	// "不知道" (3 runes) outranks every 2-rune trigger it overlaps.
	trigger, ok := classifier.PrimaryTrigger("不知道怎么带人")
	if !ok || trigger != "不知道" {
		t.Errorf("expected 不知道, got %q ok=%v", trigger, ok)
	}
}

func TestPrimaryTriggerDeclaredOrderBreaksTies(t *testing.T) {
	classifier := NewThemeClassifier()

	// 希望 and 沟通 and 团队 are all 2-rune triggers in the phrase;
	// 希望 is declared earliest so it wins.
	trigger, ok := classifier.PrimaryTrigger("希望团队沟通更顺畅")
	if !ok || trigger != "希望" {
		t.Errorf("expected 希望, got %q ok=%v", trigger, ok)
	}
}

func TestThemeUsesDisplayMap(t *testing.T) {
	classifier := NewThemeClassifier()

	theme, ok := classifier.Theme("希望团队沟通更顺畅")
	if !ok || theme != "期待与需求" {
		t.Errorf("expected 期待与需求, got %q ok=%v", theme, ok)
	}

	theme, ok = classifier.Theme("带团队的压力很大")
	if !ok || theme != "压力与心态" {
		t.Errorf("expected 压力与心态, got %q ok=%v", theme, ok)
	}
}

func TestThemeWithoutTrigger(t *testing.T) {
	classifier := NewThemeClassifier()

	if _, ok := classifier.Theme("今天天气不错"); ok {
		t.Error("expected no theme for a triggerless phrase")
	}
}

func TestEveryTriggerHasADisplayTheme(t *testing.T) {
	for _, trigger := range PainPointTriggers {
		if _, ok := TriggerDisplay[trigger]; !ok {
			t.Errorf("trigger %q has no display theme", trigger)
		}
	}
}
