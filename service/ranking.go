package service

import (
	"sort"
	"strings"

	"github.com/Scalingo/sclng-top-languages/config"
	"github.com/Scalingo/sclng-top-languages/model"
)

// RankLanguages order the totals by size (name on ties), remove hidden languages
// and keep at most count of them. Percentages are computed on the kept languages only.
func RankLanguages(totals model.LanguageTotals, opts model.RankOptions, cfg config.LanguagesConfig) ([]model.RankedLanguage, int64) {
	hidden := make(map[string]struct{}, len(opts.Hide))
	for _, name := range opts.Hide {
		hidden[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}

	languages := make([]model.Language, 0, len(totals))
	for _, lang := range totals {
		if _, isHidden := hidden[strings.ToLower(lang.Name)]; isHidden {
			continue
		}
		languages = append(languages, lang)
	}

	sort.Slice(languages, func(i, j int) bool {
		if languages[i].Size != languages[j].Size {
			return languages[i].Size > languages[j].Size
		}
		return languages[i].Name < languages[j].Name
	})

	count := clampCount(opts.Count, cfg)
	if len(languages) > count {
		languages = languages[:count]
	}

	var totalSize int64
	for _, lang := range languages {
		totalSize += lang.Size
	}

	ranked := make([]model.RankedLanguage, 0, len(languages))
	for _, lang := range languages {
		percent := 0.0
		if totalSize > 0 {
			percent = float64(lang.Size) * 100 / float64(totalSize)
		}

		ranked = append(ranked, model.RankedLanguage{
			Name:    lang.Name,
			Color:   lang.Color,
			Size:    lang.Size,
			Percent: percent,
		})
	}

	return ranked, totalSize
}

func clampCount(count int, cfg config.LanguagesConfig) int {
	if count <= 0 {
		count = cfg.DefaultCount
	}

	if cfg.MaxCount > 0 && count > cfg.MaxCount {
		count = cfg.MaxCount
	}

	if count < 1 {
		count = 1
	}

	return count
}
