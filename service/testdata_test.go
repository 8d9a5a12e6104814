package service

import "github.com/Scalingo/sclng-top-languages/model"

func color(value string) *string {
	return &value
}

// fourRepositories is the reference data set: two HTML and two javascript repositories,
// one of each being archived
func fourRepositories() []model.RepositoryNode {
	return []model.RepositoryNode{
		{
			Name: "test-repo-1",
			Languages: model.LanguageEdges{Edges: []model.LanguageEdge{
				{Size: 100, Node: model.LanguageNode{Name: "HTML", Color: color("#0f0")}},
			}},
		},
		{
			Name:       "test-repo-2",
			IsArchived: true,
			Languages: model.LanguageEdges{Edges: []model.LanguageEdge{
				{Size: 100, Node: model.LanguageNode{Name: "HTML", Color: color("#0f0")}},
			}},
		},
		{
			Name: "test-repo-3",
			Languages: model.LanguageEdges{Edges: []model.LanguageEdge{
				{Size: 100, Node: model.LanguageNode{Name: "javascript", Color: color("#0ff")}},
			}},
		},
		{
			Name:       "test-repo-4",
			IsArchived: true,
			Languages: model.LanguageEdges{Edges: []model.LanguageEdge{
				{Size: 100, Node: model.LanguageNode{Name: "javascript", Color: color("#0ff")}},
			}},
		},
	}
}

const fourRepositoriesPayload = `{
  "data": {
    "user": {
      "repositories": {
        "nodes": [
          {"name": "test-repo-1", "languages": {"edges": [{"size": 100, "node": {"color": "#0f0", "name": "HTML"}}]}},
          {"name": "test-repo-2", "isArchived": true, "languages": {"edges": [{"size": 100, "node": {"color": "#0f0", "name": "HTML"}}]}},
          {"name": "test-repo-3", "languages": {"edges": [{"size": 100, "node": {"color": "#0ff", "name": "javascript"}}]}},
          {"name": "test-repo-4", "isArchived": true, "languages": {"edges": [{"size": 100, "node": {"color": "#0ff", "name": "javascript"}}]}}
        ]
      }
    }
  }
}`

const notFoundPayload = `{
  "errors": [
    {
      "type": "NOT_FOUND",
      "path": ["user"],
      "locations": [],
      "message": "Could not resolve to a User with the login of 'noname'."
    },
    {
      "type": "OTHER",
      "message": "second error is ignored"
    }
  ]
}`
