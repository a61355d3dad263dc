package translator

import (
	"golang.org/x/text/language"
)

// MatchLanguage picks the best catalog language for a list of user-preferred
// BCP 47 tags ("en-US", "pt-BR", ...). Matching handles region and script
// variants ("pt-BR" matches an available "pt"). Returns the first available
// language when nothing matches, and "" when available is empty.
func MatchLanguage(preferred, available []string) string {
	if len(available) == 0 {
		return ""
	}

	tags := make([]language.Tag, 0, len(available))
	valid := make([]string, 0, len(available))
	for _, a := range available {
		tag, err := language.Parse(a)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		valid = append(valid, a)
	}
	if len(tags) == 0 {
		return available[0]
	}

	wanted := make([]language.Tag, 0, len(preferred))
	for _, p := range preferred {
		if tag, err := language.Parse(p); err == nil {
			wanted = append(wanted, tag)
		}
	}
	if len(wanted) == 0 {
		return valid[0]
	}

	_, idx, conf := language.NewMatcher(tags).Match(wanted...)
	if conf == language.No {
		return valid[0]
	}
	return valid[idx]
}
