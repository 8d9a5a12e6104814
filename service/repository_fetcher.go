package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/Scalingo/sclng-top-languages/model"
	"github.com/google/go-github/v66/github"
	log "github.com/sirupsen/logrus"
)

// repositoriesQuery fetch the last 100 pushed repositories owned by the user
// with their 10 biggest languages
const repositoriesQuery = `
query userInfo($login: String!) {
  user(login: $login) {
    repositories(ownerAffiliations: OWNER, isFork: false, first: 100, orderBy: {field: PUSHED_AT, direction: DESC}) {
      nodes {
        name
        isArchived
        languages(first: 10, orderBy: {field: SIZE, direction: DESC}) {
          edges {
            size
            node {
              color
              name
            }
          }
        }
      }
    }
  }
}`

type RepositoryFetcher interface {
	FetchRepositories(ctx context.Context, username string) ([]model.RepositoryNode, error)
}

type graphqlFetcher struct {
	githubClient *github.Client
	endpoint     string
}

// NewGraphQLFetcher use the github client to post the query, the token must already be set on it
// using WithAuthToken so the fetcher never reads the configuration by itself
func NewGraphQLFetcher(githubClient *github.Client, endpoint string) RepositoryFetcher {
	return graphqlFetcher{
		githubClient: githubClient,
		endpoint:     endpoint,
	}
}

func (f graphqlFetcher) FetchRepositories(ctx context.Context, username string) ([]model.RepositoryNode, error) {
	log.WithField("username", username).Debug("fetch repositories from github graphql api")

	req, err := f.githubClient.NewRequest(http.MethodPost, f.endpoint, model.GraphQLRequest{
		Query:     repositoriesQuery,
		Variables: map[string]any{"login": username},
	})

	if err != nil {
		log.WithError(err).Error("unable to build graphql request")
		return nil, model.ErrFetch
	}

	var response model.RepositoriesResponse
	if _, err := f.githubClient.Do(ctx, req, &response); err != nil {
		return nil, HandleRequestErrors(err)
	}

	// graphql errors are sent with a 200 status, only the first one is relevant
	if len(response.Errors) > 0 {
		log.WithFields(log.Fields{
			"username": username,
			"type":     response.Errors[0].Type,
		}).Info("github graphql api returned an error")

		return nil, &model.UpstreamQueryError{
			Type:    response.Errors[0].Type,
			Message: response.Errors[0].Message,
		}
	}

	if response.Data.User == nil {
		log.WithField("username", username).Warning("graphql response without user and without errors")
		return nil, model.ErrInvalidData
	}

	return response.Data.User.Repositories.Nodes, nil
}

// HandleRequestErrors classify errors returned by the github client
// no retry is done here, rate limit errors are only reported to the caller
func HandleRequestErrors(err error) error {
	var rateLimitErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError

	if errors.As(err, &rateLimitErr) || errors.As(err, &abuseErr) {
		log.Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return model.ErrRateLimitReached
	}

	log.WithError(err).Error("error catched when fetching data from github")
	return model.ErrFetch
}
