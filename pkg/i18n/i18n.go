package i18n

import (
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"github.com/imdario/mergo"
	"github.com/sirupsen/logrus"
)

// NewTranslationSet returns the translation set for the given language.
// 'auto' detects the user's language from the environment. Whatever language
// is picked, English is merged underneath so that every string is populated.
func NewTranslationSet(log *logrus.Entry, language string) *TranslationSet {
	if language == "auto" || language == "" {
		language = detectLanguage(jibber_jabber.DetectLanguage)
	}
	log.Info("language: " + language)

	baseSet := englishSet()
	for languageCode, translationSet := range translationSets() {
		if strings.HasPrefix(language, languageCode) {
			_ = mergo.Merge(&translationSet, baseSet)
			return &translationSet
		}
	}
	return &baseSet
}

// translationSets returns all the translation sets we ship. English is the
// base and lives outside this map.
func translationSets() map[string]TranslationSet {
	return map[string]TranslationSet{
		"ko": koreanSet(),
	}
}

// detectLanguage extracts user language from environment
func detectLanguage(langDetector func() (string, error)) string {
	if userLang, err := langDetector(); err == nil {
		return userLang
	}
	return "C"
}
