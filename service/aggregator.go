package service

import "github.com/Scalingo/sclng-top-languages/model"

// AggregateLanguages sum the size of each language across the repositories kept by the options.
// When the same language has different colors, the last one seen is kept.
func AggregateLanguages(nodes []model.RepositoryNode, opts model.AggregateOptions) model.LanguageTotals {
	totals := make(model.LanguageTotals)

	for _, node := range nodes {
		if opts.ExcludeArchived && node.IsArchived {
			continue
		}

		if _, excluded := opts.Exclude[node.Name]; excluded {
			continue
		}

		for _, edge := range node.Languages.Edges {
			totals[edge.Node.Name] = model.Language{
				Name:  edge.Node.Name,
				Color: edge.Node.Color,
				Size:  totals[edge.Node.Name].Size + edge.Size,
			}
		}
	}

	return totals
}
