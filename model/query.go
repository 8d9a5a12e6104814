package model

import "strings"

// TopLanguagesQuery holds the query string parameters for the top languages routes
type TopLanguagesQuery struct {
	Username        string `form:"username"`
	Usernames       string `form:"usernames"`
	ExcludeRepo     string `form:"exclude_repo"`
	ExcludeArchived bool   `form:"exclude_archived"`
	Hide            string `form:"hide"`
	LangsCount      int    `form:"langs_count"`
}

type AggregateOptions struct {
	Exclude         map[string]struct{}
	ExcludeArchived bool
}

type RankOptions struct {
	Hide  []string
	Count int
}

func (params TopLanguagesQuery) ToAggregateOptions() AggregateOptions {
	exclude := make(map[string]struct{})

	// repository names are matched exactly, only surrounding spaces are dropped
	for _, name := range splitList(params.ExcludeRepo) {
		exclude[name] = struct{}{}
	}

	return AggregateOptions{
		Exclude:         exclude,
		ExcludeArchived: params.ExcludeArchived,
	}
}

func (params TopLanguagesQuery) ToRankOptions() RankOptions {
	return RankOptions{
		Hide:  splitList(params.Hide),
		Count: params.LangsCount,
	}
}

func (params TopLanguagesQuery) UsernameList() []string {
	return splitList(params.Usernames)
}

func splitList(value string) []string {
	items := make([]string, 0)

	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}

	return items
}
