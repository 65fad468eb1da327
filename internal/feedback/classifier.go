package feedback

import "strings"

// ThemeClassifier assigns each phrase to a theme via its primary
// trigger.
type ThemeClassifier struct {
	priority []string
}

// NewThemeClassifier creates a classifier with the standard trigger
// priority.
func NewThemeClassifier() *ThemeClassifier {
	return &ThemeClassifier{priority: triggerPriority()}
}

// PrimaryTrigger returns the first priority-ordered trigger contained
// in the phrase. Longer triggers win over shorter ones so a phrase with
// "不知道" is not claimed by an overlapping two-character trigger.
func (c *ThemeClassifier) PrimaryTrigger(phrase string) (string, bool) {
	for _, t := range c.priority {
		if strings.Contains(phrase, t) {
			return t, true
		}
	}
	return "", false
}

// Theme returns the theme display name for a phrase. Phrases without
// any trigger return ok=false; triggers outside the display map use the
// trigger itself as the theme.
func (c *ThemeClassifier) Theme(phrase string) (string, bool) {
	trigger, ok := c.PrimaryTrigger(phrase)
	if !ok {
		return "", false
	}
	if theme, mapped := TriggerDisplay[trigger]; mapped {
		return theme, true
	}
	return trigger, true
}
