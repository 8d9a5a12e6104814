package model

type GraphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type GraphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// RepositoriesResponse matches the body returned for the top languages query
type RepositoriesResponse struct {
	Data struct {
		User *struct {
			Repositories struct {
				Nodes []RepositoryNode `json:"nodes"`
			} `json:"repositories"`
		} `json:"user"`
	} `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}
