package service

import (
	"context"
	"strings"

	"github.com/Scalingo/sclng-top-languages/config"
	"github.com/Scalingo/sclng-top-languages/model"
	"github.com/remeh/sizedwaitgroup"
	log "github.com/sirupsen/logrus"
)

type LanguageService interface {
	FetchTopLanguages(ctx context.Context, username string, opts model.AggregateOptions) (model.LanguageTotals, error)
	GetRankedTopLanguages(ctx context.Context, username string, aggOpts model.AggregateOptions, rankOpts model.RankOptions) (model.TopLanguages, error)
	CompareTopLanguages(ctx context.Context, usernames []string, aggOpts model.AggregateOptions, rankOpts model.RankOptions) ([]model.CompareEntry, error)
}

type languageService struct {
	fetcher RepositoryFetcher
	config  config.Config
}

func NewLanguageService(config config.Config, fetcher RepositoryFetcher) LanguageService {
	return languageService{
		fetcher: fetcher,
		config:  config,
	}
}

// FetchTopLanguages issue a single request and aggregate the languages of the returned repositories
func (s languageService) FetchTopLanguages(ctx context.Context, username string, opts model.AggregateOptions) (model.LanguageTotals, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, model.ErrInvalidQuery
	}

	nodes, err := s.fetcher.FetchRepositories(ctx, username)
	if err != nil {
		return nil, err
	}

	totals := AggregateLanguages(nodes, opts)

	log.WithFields(log.Fields{
		"username":             username,
		"numberOfRepositories": len(nodes),
		"numberOfLanguages":    len(totals),
		"excludedRepositories": len(opts.Exclude),
		"excludeArchived":      opts.ExcludeArchived,
	}).Info("top languages aggregated")

	return totals, nil
}

func (s languageService) GetRankedTopLanguages(ctx context.Context, username string, aggOpts model.AggregateOptions, rankOpts model.RankOptions) (model.TopLanguages, error) {
	totals, err := s.FetchTopLanguages(ctx, username, aggOpts)
	if err != nil {
		return model.TopLanguages{}, err
	}

	ranked, totalSize := RankLanguages(totals, rankOpts, s.config.Languages)

	return model.TopLanguages{
		Username:  strings.TrimSpace(username),
		TotalSize: totalSize,
		Languages: ranked,
	}, nil
}

// CompareTopLanguages run one ranked fetch per user, in parallel with
// at most MaxParallelTasksAllowed requests at the same time.
// A failing user does not fail the others, the error is set on its entry.
func (s languageService) CompareTopLanguages(ctx context.Context, usernames []string, aggOpts model.AggregateOptions, rankOpts model.RankOptions) ([]model.CompareEntry, error) {
	if len(usernames) == 0 {
		return nil, model.ErrInvalidQuery
	}

	parallel := s.config.Tasks.MaxParallelTasksAllowed
	if parallel < 1 {
		parallel = 1
	}

	// each goroutine write only on its own index
	entries := make([]model.CompareEntry, len(usernames))
	swg := sizedwaitgroup.New(parallel)

	for i, username := range usernames {
		swg.Add()

		go func(i int, username string) {
			defer swg.Done()

			top, err := s.GetRankedTopLanguages(ctx, username, aggOpts, rankOpts)
			if err != nil {
				apiErr := model.NewAPIError(err)
				entries[i] = model.CompareEntry{
					TopLanguages: model.TopLanguages{Username: username, Languages: []model.RankedLanguage{}},
					Error:        &apiErr,
				}
				return
			}

			entries[i] = model.CompareEntry{TopLanguages: top}
		}(i, username)
	}

	log.WithField("numberOfUsers", len(usernames)).Debug("waiting for all top languages fetches to be finished")
	swg.Wait()

	return entries, nil
}
